package battle

import (
	"fmt"

	"github.com/randomlocke/core/internal/data"
	"github.com/randomlocke/core/internal/game/ability"
	"github.com/randomlocke/core/internal/game/item"
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

// OpponentPolicy picks the opponent's move for one active slot. The
// engine consults it exactly once per opposing slot per turn, before
// scheduling.
type OpponentPolicy interface {
	ChooseMove(c *model.CreatureInstance) (moveID string)
}

// fieldSetterMoves maps the weather and terrain moves to the state they
// install on successful execution.
var weatherMoves = map[string]model.Weather{
	"sunny-day":  model.WeatherSun,
	"rain-dance": model.WeatherRain,
	"sandstorm":  model.WeatherSandstorm,
	"hail":       model.WeatherHail,
}

var terrainMoves = map[string]model.Terrain{
	"electric-terrain": model.TerrainElectric,
	"grassy-terrain":   model.TerrainGrassy,
	"misty-terrain":    model.TerrainMisty,
	"psychic-terrain":  model.TerrainPsychic,
}

// redirectMoves maps the Follow-Me family to its redirection kinds.
var redirectMoves = map[string]model.RedirectKind{
	"follow-me":   model.RedirectFollowMe,
	"rage-powder": model.RedirectRagePowder,
	"spotlight":   model.RedirectSpotlight,
}

// guardMoves set the side-wide turn guards.
var guardMoves = map[string]func(v *model.VolatileStatus){
	"wide-guard":    func(v *model.VolatileStatus) { v.WideGuardActive = true },
	"quick-guard":   func(v *model.VolatileStatus) { v.QuickGuardActive = true },
	"mat-block":     func(v *model.VolatileStatus) { v.MatBlockActive = true },
	"crafty-shield": func(v *model.VolatileStatus) { v.CraftyShield = true },
}

// Engine resolves one battle turn. It owns no state between turns: the
// caller constructs one per ExecuteTurn call (or reuses it; the engine
// only reads its fields).
type Engine struct {
	f      *Field
	r      *rng.Rand
	policy OpponentPolicy

	result  model.TurnResult
	outcome model.BattleOutcome
}

// New builds an engine over a battle's state, the player team and the
// battle's RNG stream.
func New(state *model.BattleState, playerTeam []*model.CreatureInstance, r *rng.Rand, policy OpponentPolicy) *Engine {
	return &Engine{
		f:      &Field{State: state, Player: playerTeam},
		r:      r,
		policy: policy,
	}
}

func (e *Engine) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	e.result.Logs = append(e.result.Logs, line)
	e.f.State.Log = append(e.f.State.Log, line)
}

func (e *Engine) logLines(lines []string) {
	for _, l := range lines {
		e.result.Logs = append(e.result.Logs, l)
		e.f.State.Log = append(e.f.State.Log, l)
	}
}

// ExecuteTurn runs the full pipeline: entry hooks, action harvest,
// ordering, per-action execution, faint resolution, residuals and field
// timers. It consumes the pending player actions.
func (e *Engine) ExecuteTurn() model.TurnResult {
	st := e.f.State
	e.outcome = model.OutcomeContinue
	st.Turn++

	// Redirection lasts only the turn it was set.
	st.Redirection = nil

	if st.Turn == 1 {
		for _, pos := range append(e.f.LivePositions(true), e.f.LivePositions(false)...) {
			c := e.f.At(pos)
			if c != nil && !c.OnField() {
				c.EnterField()
			}
			e.fireEntryHooks(pos)
		}
	}

	for _, pos := range e.f.AllLivePositions() {
		if c := e.f.At(pos); c != nil && c.Volatile != nil {
			c.Volatile.ResetTurnFlags()
		}
	}

	candidates := e.harvestActions()
	SortActions(candidates, e.r)

	for _, cand := range candidates {
		if e.outcome.Terminal() {
			break
		}
		e.executeAction(cand)
	}

	if e.outcome == model.OutcomeContinue {
		e.resolveResiduals()
	}

	if !e.outcome.Terminal() {
		e.tickFieldTimers()
	}
	e.clearEndOfTurnVolatiles()

	st.PendingPlayerActions = nil
	e.result.Outcome = e.outcome
	return e.result
}

// harvestActions builds one candidate per active slot: pending player
// actions as submitted, opponent slots through the policy.
func (e *Engine) harvestActions() []*ActionCandidate {
	st := e.f.State
	var out []*ActionCandidate

	for _, pa := range st.PendingPlayerActions {
		cand := e.buildPlayerCandidate(pa)
		if cand != nil {
			out = append(out, cand)
		}
	}

	for _, pos := range e.f.LivePositions(false) {
		c := e.f.At(pos)
		moveID := e.policy.ChooseMove(c)
		cand := e.buildMoveCandidate(pos, c, moveID, nil)
		if cand != nil {
			out = append(out, cand)
		}
	}
	return out
}

func (e *Engine) buildPlayerCandidate(pa model.PendingAction) *ActionCandidate {
	st := e.f.State
	var pos model.FieldPosition
	found := false
	for slot, idx := range st.PlayerActiveIndices {
		if idx == pa.UserIndex {
			pos = model.PositionFor(true, slot)
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	c := e.f.At(pos)
	if c == nil || c.IsFainted() {
		return nil
	}

	if pa.IsSwitch {
		return &ActionCandidate{
			Position:  pos,
			TeamIndex: pa.UserIndex,
			IsPlayer:  true,
			Speed:     EffectiveSpeed(c, st.WeatherKind(), st.TerrainKind()),
			Priority:  switchPriority,
			Name:      c.Name(),
			IsSwitch:  true,
			SwitchTo:  pa.SwitchTo,
		}
	}
	return e.buildMoveCandidate(pos, c, pa.MoveID, pa.TargetPosition)
}

// buildMoveCandidate resolves the chosen move against the creature's
// learned list and the catalog, substituting Struggle for empty or
// unknown picks and honoring choice locks.
func (e *Engine) buildMoveCandidate(pos model.FieldPosition, c *model.CreatureInstance, moveID string, target *model.FieldPosition) *ActionCandidate {
	st := e.f.State

	if c.Volatile != nil && c.Volatile.LockedMoveID != "" {
		moveID = c.Volatile.LockedMoveID
	}

	mv := data.GetMove(moveID)
	idx := c.FindMove(moveID)
	// Only the first four learned moves are usable in battle.
	if mv == nil || idx < 0 || idx >= model.ActiveMoveSlots ||
		c.Moves[idx].CurrentPP <= 0 || moveID == StruggleID {
		mv = CreateStruggleMove()
	}

	// Assault-vest refuses status moves; fall back to Struggle.
	if mv.DamageClass == model.ClassStatus {
		for _, h := range item.HooksFor(c.HeldItemID, item.OnStatusMoveAttempt) {
			if _, ok := h.Effect.(item.BlockStatusMoves); ok {
				mv = CreateStruggleMove()
			}
		}
	}

	return &ActionCandidate{
		Position:       pos,
		TeamIndex:      st.ActiveIndex(pos),
		IsPlayer:       pos.IsPlayerSide(),
		Speed:          EffectiveSpeed(c, st.WeatherKind(), st.TerrainKind()),
		Priority:       EffectivePriority(c, mv),
		Move:           mv,
		MoveTemplateID: mv.ID,
		SelectedTarget: target,
		Name:           c.Name(),
	}
}

// executeAction runs one candidate through the action state machine:
// alive check, status gate, PP, targeting, protection, accuracy, the hit
// loop and secondary effects.
func (e *Engine) executeAction(cand *ActionCandidate) {
	actor := e.f.At(cand.Position)
	if actor == nil || actor.IsFainted() || e.f.State.ActiveIndex(cand.Position) != cand.TeamIndex {
		return
	}

	if cand.IsSwitch {
		e.performSwitch(cand.Position, cand.SwitchTo)
		return
	}

	canAct, gateLogs := StatusGate(actor, e.r)
	e.logLines(gateLogs)
	if actor.Volatile != nil {
		actor.Volatile.ActedThisTurn = true
	}
	if !canAct {
		if actor.IsFainted() {
			e.resolveFaint(cand.Position)
		}
		return
	}

	mv := cand.Move
	e.logf("%s used %s!", actor.Name(), mv.Name)

	if !ConsumeMovePP(actor, mv.ID) && mv.ID != StruggleID {
		// Degenerate selection slipped through; fizzle with Struggle next time.
		e.logf("But it failed!")
		return
	}

	// Choice items lock on first use.
	if actor.Volatile != nil && actor.Volatile.LockedMoveID == "" {
		for _, h := range item.HooksFor(actor.HeldItemID, item.BeforeDamageDealt) {
			if _, ok := h.Effect.(item.LockMove); ok && mv.ID != StruggleID {
				actor.Volatile.LockedMoveID = mv.ID
			}
		}
	}

	// Self-affecting field and guard moves resolve without targets.
	if e.executeFieldOrGuardMove(cand, actor, mv) {
		return
	}

	targets := ResolveTargets(e.f, cand.Position, mv.Meta.Target, cand.SelectedTarget, actor, e.r)
	if len(targets) == 0 && mv.Meta.Target != model.TargetUser {
		e.logf("But it failed!")
		return
	}

	spread := mv.Meta.Target.Spread() && len(targets) > 1
	for _, targetPos := range targets {
		if e.outcome.Terminal() {
			return
		}
		e.executeHitPipeline(cand, actor, mv, targetPos, spread)
		if actor.IsFainted() {
			// Recoil or contact punishment took the actor down mid-swing.
			e.logf("%s fainted!", actor.Name())
			e.resolveFaint(cand.Position)
			return
		}
	}
}

// executeFieldOrGuardMove handles the moves that install field state or
// turn guards instead of hitting targets. Returns true when handled.
func (e *Engine) executeFieldOrGuardMove(cand *ActionCandidate, actor *model.CreatureInstance, mv *model.MoveData) bool {
	st := e.f.State

	if w, ok := weatherMoves[mv.ID]; ok {
		st.Weather = &model.WeatherState{Kind: w, TurnsRemaining: model.DefaultFieldTurns}
		e.logf("%s", weatherStartLog(w))
		return true
	}
	if t, ok := terrainMoves[mv.ID]; ok {
		st.Terrain = &model.TerrainState{Kind: t, TurnsRemaining: model.DefaultFieldTurns}
		e.logf("%s", terrainStartLog(t))
		return true
	}
	if kind, ok := redirectMoves[mv.ID]; ok {
		st.Redirection = &model.Redirection{
			Redirector:   cand.Position,
			Kind:         kind,
			OpponentOnly: kind != model.RedirectSpotlight,
		}
		e.logf("%s became the center of attention!", actor.Name())
		return true
	}
	if protectFamily[mv.ID] {
		if TryProtect(actor, e.r) {
			e.logf("%s protected itself!", actor.Name())
		} else {
			e.logf("But it failed!")
		}
		return true
	}
	if set, ok := guardMoves[mv.ID]; ok && actor.Volatile != nil {
		if mv.ID == "mat-block" && !actor.Volatile.JustEntered {
			e.logf("But it failed!")
			return true
		}
		set(actor.Volatile)
		e.logf("%s is shielding its side!", actor.Name())
		return true
	}
	if mv.ID == "leech-seed" {
		return e.executeLeechSeed(cand, actor)
	}
	return false
}

func (e *Engine) executeLeechSeed(cand *ActionCandidate, actor *model.CreatureInstance) bool {
	targets := ResolveTargets(e.f, cand.Position, model.TargetSelected, cand.SelectedTarget, actor, e.r)
	if len(targets) == 0 {
		e.logf("But it failed!")
		return true
	}
	target := e.f.At(targets[0])
	if target == nil || target.Volatile == nil || target.Volatile.LeechSeeded ||
		target.HasType(model.TypeGrass) || target.HasType(model.TypeGhost) {
		e.logf("But it failed!")
		return true
	}
	target.Volatile.LeechSeeded = true
	target.Volatile.LeechSeedSource = actor.InstanceID
	e.logf("%s was seeded!", target.Name())
	return true
}

// executeHitPipeline runs protection, accuracy, the hit loop and the
// per-target secondary effects against one resolved target.
func (e *Engine) executeHitPipeline(cand *ActionCandidate, actor *model.CreatureInstance, mv *model.MoveData, targetPos model.FieldPosition, spread bool) {
	st := e.f.State
	target := e.f.At(targetPos)
	if target == nil || target.IsFainted() {
		return
	}

	if blocked, guard := CheckProtection(e.f, targetPos, mv, cand.Priority); blocked {
		if guard == "Protect" {
			e.logf("%s protected itself!", target.Name())
		} else {
			e.logf("%s blocked the attack!", guard)
		}
		return
	}

	if !e.accuracyCheck(actor, target, mv) {
		e.logf("%s avoided the attack!", target.Name())
		return
	}

	if !mv.IsDamaging() {
		// Pure status move against a single target.
		logs := ApplySecondaryEffects(e.f, actor, target, targetActed(target), mv, 0, false, e.r)
		if len(logs) == 0 {
			e.logf("But it failed!")
		} else {
			e.logLines(logs)
		}
		return
	}

	hits := HitCount(mv.Meta.MinHits, mv.Meta.MaxHits, e.r)
	totalDealt := 0
	sheerForce := false

	for h := 0; h < hits; h++ {
		if target.IsFainted() || actor.IsFainted() {
			break
		}
		crit := CheckCriticalHit(CritStage(actor, mv), e.r)
		res := CalculateDamage(actor, target, mv, crit, e.r, st.WeatherKind(), st.TerrainKind())

		if res.Absorbed {
			e.logLines(res.Logs)
			return
		}
		if res.Damage == 0 {
			e.logf("It doesn't affect %s...", target.Name())
			return
		}

		dmg := res.Damage
		if spread {
			dmg = dmg * 3 / 4
			if dmg < 1 {
				dmg = 1
			}
		}

		lost, brokeSub := e.applyHitDamage(target, dmg)
		totalDealt += lost
		sheerForce = sheerForce || res.SheerForce

		if res.Critical {
			e.logf("A critical hit!")
		}
		switch res.Label {
		case LabelSuperEffective:
			e.logf("It's super effective!")
		case LabelNotVeryEffective:
			e.logf("It's not very effective...")
		}
		if brokeSub {
			e.logf("%s's substitute faded!", target.Name())
		} else {
			e.logf("%s took %d damage!", target.Name(), lost)
		}

		if cand.IsPlayer {
			e.result.PlayerDamageDealt += lost
		} else {
			e.result.EnemyDamageDealt += lost
		}

		if mv.Meta.MakesContact && !target.IsFainted() {
			e.logLines(FireContactHooks(actor, target, e.r))
		}
		if !target.IsFainted() {
			e.logLines(FireOnReceiveDamageHooks(target, res.Label == LabelSuperEffective))
		}
	}

	if hits > 1 {
		e.logf("Hit %d time(s)!", hits)
	}

	if totalDealt > 0 || mv.DamageClass == model.ClassStatus {
		e.logLines(ApplySecondaryEffects(e.f, actor, target, targetActed(target), mv, totalDealt, sheerForce, e.r))
	}

	// Life-orb recoil after the damage went out.
	if totalDealt > 0 {
		for _, h := range item.HooksFor(actor.HeldItemID, item.AfterDamageDealt) {
			if rec, ok := h.Effect.(item.RecoilDamage); ok {
				actor.ApplyDamage(int(float64(actor.MaxHP()) * rec.Fraction))
				e.logf("%s lost some HP due to its %s!", actor.Name(), item.Name(actor.HeldItemID))
			}
		}
	}

	e.logLines(CheckHPThresholdItems(target))

	if target.IsFainted() {
		e.logf("%s fainted!", target.Name())
		e.resolveFaint(targetPos)
		return
	}

	if mv.Meta.ForcesSwitch && totalDealt > 0 && target.Volatile != nil {
		target.Volatile.ForcedSwitch = true
		e.resolveForcedSwitch(targetPos)
	}
}

// applyHitDamage routes damage through an active substitute first.
func (e *Engine) applyHitDamage(target *model.CreatureInstance, dmg int) (lost int, brokeSub bool) {
	if target.Volatile != nil && target.Volatile.SubstituteHP > 0 {
		sub := target.Volatile.SubstituteHP
		if dmg >= sub {
			target.Volatile.SubstituteHP = 0
			return 0, true
		}
		target.Volatile.SubstituteHP -= dmg
		return 0, false
	}
	return target.ApplyDamage(dmg), false
}

func targetActed(target *model.CreatureInstance) bool {
	return target.Volatile != nil && target.Volatile.ActedThisTurn
}

// accuracyCheck rolls the single per-target accuracy draw. Moves without
// an accuracy value never miss.
func (e *Engine) accuracyCheck(actor, target *model.CreatureInstance, mv *model.MoveData) bool {
	if mv.Accuracy == nil {
		return true
	}
	p := float64(*mv.Accuracy)

	accStage, evaStage := 0, 0
	if actor.Stages != nil {
		accStage = actor.Stages.Accuracy
	}
	if target.Stages != nil {
		evaStage = target.Stages.Evasion
	}
	p *= model.AccuracyStageMultiplier(accStage) / model.AccuracyStageMultiplier(evaStage)

	for _, eff := range ability.EffectsFor(actor.AbilityID, ability.BeforeDamage) {
		if a, ok := eff.(ability.ModifyAccuracy); ok {
			p *= a.Factor
		}
	}

	if p >= 100 {
		return true
	}
	return e.r.Float64()*100 < p
}

// performSwitch swaps the creature at a position for a bench member.
func (e *Engine) performSwitch(pos model.FieldPosition, benchIndex int) {
	team := e.f.Team(pos)
	if benchIndex < 0 || benchIndex >= len(team) || team[benchIndex].IsFainted() {
		return
	}
	outgoing := e.f.At(pos)
	if outgoing != nil {
		for _, eff := range ability.EffectsFor(outgoing.AbilityID, ability.OnSwitch) {
			if heal, ok := eff.(ability.HealOnSwitch); ok {
				outgoing.Heal(int(float64(outgoing.MaxHP()) * heal.Fraction))
			}
		}
		outgoing.LeaveField()
		e.logf("%s was withdrawn!", outgoing.Name())
	}

	e.f.State.SetActiveIndex(pos, benchIndex)
	incoming := e.f.At(pos)
	incoming.EnterField()
	e.logf("Go, %s!", incoming.Name())
	e.fireEntryHooks(pos)
}

// EntryHooks runs the entry ability effects for the creature at a
// position and returns the produced log lines. The session layer uses
// it when a replacement enters between turns; in-turn switches go
// through the engine itself.
func EntryHooks(state *model.BattleState, playerTeam []*model.CreatureInstance, pos model.FieldPosition) []string {
	e := &Engine{f: &Field{State: state, Player: playerTeam}}
	e.fireEntryHooks(pos)
	return e.result.Logs
}

func weatherStartLog(w model.Weather) string {
	switch w {
	case model.WeatherSun:
		return "The sunlight turned harsh!"
	case model.WeatherRain:
		return "It started to rain!"
	case model.WeatherSandstorm:
		return "A sandstorm kicked up!"
	case model.WeatherHail:
		return "It started to hail!"
	}
	return "The weather changed!"
}

func terrainStartLog(t model.Terrain) string {
	switch t {
	case model.TerrainElectric:
		return "An electric current ran across the battlefield!"
	case model.TerrainGrassy:
		return "Grass grew to cover the battlefield!"
	case model.TerrainMisty:
		return "Mist swirled around the battlefield!"
	case model.TerrainPsychic:
		return "The battlefield got weird!"
	}
	return "The terrain changed!"
}
