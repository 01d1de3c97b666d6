// Package data owns the immutable catalogs (species, moves) and the type
// chart. Catalogs are loaded once at startup and read concurrently after
// that; loaders are not safe to race with readers.
package data

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/randomlocke/core/internal/model"
)

var (
	species = map[string]*model.SpeciesData{}
	moves   = map[string]*model.MoveData{}
)

// LoadSpecies reads the species catalog from a JSON file.
func LoadSpecies(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read species catalog: %w", err)
	}
	if err := LoadSpeciesBytes(raw); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadSpeciesBytes parses a JSON array of species records.
func LoadSpeciesBytes(raw []byte) error {
	var list []*model.SpeciesData
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("species catalog: %w", err)
	}
	for _, s := range list {
		if s.ID == "" {
			return fmt.Errorf("species record without id (name %q)", s.Name)
		}
		species[s.ID] = s
	}
	slog.Info("species loaded", "count", len(species))
	return nil
}

// LoadMoves reads the move catalog from a JSON file.
func LoadMoves(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read move catalog: %w", err)
	}
	if err := LoadMovesBytes(raw); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadMovesBytes parses a JSON array of move records.
func LoadMovesBytes(raw []byte) error {
	var list []*model.MoveData
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("move catalog: %w", err)
	}
	for _, m := range list {
		if m.ID == "" {
			return fmt.Errorf("move record without id (name %q)", m.Name)
		}
		moves[m.ID] = m
	}
	slog.Info("moves loaded", "count", len(moves))
	return nil
}

// GetSpecies returns the species record or nil if unknown.
func GetSpecies(id string) *model.SpeciesData {
	return species[id]
}

// GetMove returns the move record or nil if unknown.
func GetMove(id string) *model.MoveData {
	return moves[id]
}

// MoveIDs returns all move ids in sorted order, so seeded draws from the
// global pool are reproducible.
func MoveIDs() []string {
	ids := make([]string, 0, len(moves))
	for id := range moves {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SpeciesIDs returns all species ids in sorted order.
func SpeciesIDs() []string {
	ids := make([]string, 0, len(species))
	for id := range species {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RegisterSpecies inserts a record directly. Used by generators and tests.
func RegisterSpecies(s *model.SpeciesData) {
	species[s.ID] = s
}

// RegisterMove inserts a record directly. Used by generators and tests.
func RegisterMove(m *model.MoveData) {
	moves[m.ID] = m
}

// ResolveSpecies rebinds the catalog reference on a deserialized
// creature. Returns false when the species is unknown.
func ResolveSpecies(c *model.CreatureInstance) bool {
	c.Species = species[c.SpeciesID]
	return c.Species != nil
}
