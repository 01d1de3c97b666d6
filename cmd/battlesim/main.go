package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/randomlocke/core/internal/ai"
	"github.com/randomlocke/core/internal/config"
	"github.com/randomlocke/core/internal/data"
	"github.com/randomlocke/core/internal/db"
	"github.com/randomlocke/core/internal/game/factory"
	"github.com/randomlocke/core/internal/game/session"
	"github.com/randomlocke/core/internal/model"
	"github.com/randomlocke/core/internal/rng"
)

const ConfigPath = "config/battlesim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("RANDOMLOCKE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	slog.Info("battle simulator starting",
		"battles", cfg.Simulation.Battles,
		"parallelism", cfg.Simulation.Parallelism,
		"seed", cfg.Simulation.Seed)

	if err := data.LoadSpecies(cfg.SpeciesPath); err != nil {
		return fmt.Errorf("loading species catalog: %w", err)
	}
	if err := data.LoadMoves(cfg.MovesPath); err != nil {
		return fmt.Errorf("loading move catalog: %w", err)
	}

	var store session.Store
	if cfg.PersistSessions {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")
		store = database
	}

	mgr := session.NewManager(store)

	var (
		mu       sync.Mutex
		outcomes = map[model.BattleOutcome]int{}
		turns    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Simulation.Parallelism)

	for i := 0; i < cfg.Simulation.Battles; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, turnCount, err := runBattle(gctx, mgr, cfg, i)
			if err != nil {
				return fmt.Errorf("battle %d: %w", i, err)
			}
			mu.Lock()
			outcomes[outcome]++
			turns += turnCount
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation error: %w", err)
	}

	total := cfg.Simulation.Battles
	avgTurns := 0.0
	if total > 0 {
		avgTurns = float64(turns) / float64(total)
	}
	slog.Info("simulation complete",
		"battles", total,
		"player_won", outcomes[model.OutcomePlayerWon],
		"player_lost", outcomes[model.OutcomePlayerLost],
		"unresolved", outcomes[model.OutcomeContinue],
		"avg_turns", fmt.Sprintf("%.1f", avgTurns))
	return nil
}

// runBattle plays one complete battle between two freshly generated
// teams, both sides driven by the baseline policy.
func runBattle(ctx context.Context, mgr *session.Manager, cfg config.Server, battleNum int) (model.BattleOutcome, int, error) {
	sim := cfg.Simulation
	seed := sim.Seed + uint64(battleNum)
	opts := factory.Options{ChaosMode: sim.ChaosMode}

	playerTeam, err := factory.Team(sim.TeamSize, sim.Level, seed, opts)
	if err != nil {
		return "", 0, fmt.Errorf("building player team: %w", err)
	}
	opponentTeam, err := factory.Team(sim.TeamSize, sim.Level, seed+uint64(sim.Battles), opts)
	if err != nil {
		return "", 0, fmt.Errorf("building opponent team: %w", err)
	}

	id := fmt.Sprintf("sim-%d-%d", sim.Seed, battleNum)
	policy := ai.Random{R: rng.New(seed ^ 0xa5a5a5a5)}
	s, err := mgr.Create(id, "simulator", playerTeam, seed, policy)
	if err != nil {
		return "", 0, fmt.Errorf("creating session: %w", err)
	}

	format := model.FormatSingle
	if sim.Doubles {
		format = model.FormatDouble
	}
	if err := s.StartBattle(opponentTeam, format); err != nil {
		return "", 0, fmt.Errorf("starting battle: %w", err)
	}

	chooser := ai.FirstLegal{}
	for turn := 0; turn < sim.MaxTurns && !s.Outcome.Terminal(); turn++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}

		if s.Outcome == model.OutcomePlayerMustSwitch {
			if err := replaceFaintedSlots(s); err != nil {
				return "", 0, err
			}
		}

		for _, idx := range s.State.PlayerActiveIndices {
			if idx < 0 || s.Team[idx].IsFainted() {
				continue
			}
			moveID := chooser.ChooseMove(s.Team[idx])
			if err := s.SubmitAction(model.PendingAction{UserIndex: idx, MoveID: moveID}); err != nil {
				return "", 0, fmt.Errorf("submitting action: %w", err)
			}
		}

		if _, err := s.AdvanceTurn(); err != nil {
			return "", 0, fmt.Errorf("advancing turn: %w", err)
		}
	}

	outcome := s.Outcome
	turnCount := 0
	if s.State != nil {
		turnCount = s.State.Turn
	}

	if err := mgr.Persist(ctx, s); err != nil {
		return "", 0, err
	}
	mgr.Release(id)
	return outcome, turnCount, nil
}

// replaceFaintedSlots fills every empty player slot with the next live
// bench member.
func replaceFaintedSlots(s *session.GameSession) error {
	for slot, idx := range s.State.PlayerActiveIndices {
		if idx >= 0 && !s.Team[idx].IsFainted() {
			continue
		}
		pos := model.PositionFor(true, slot)
		for bench, c := range s.Team {
			if c.IsFainted() || c.OnField() {
				continue
			}
			if err := s.ReplaceFainted(pos, bench); err != nil {
				return fmt.Errorf("replacing fainted slot %s: %w", pos, err)
			}
			break
		}
	}
	return nil
}
