// Package store holds the in-memory team statistics snapshot used by the
// prediction pipeline.
package store

import (
	"sort"
	"sync/atomic"

	"github.com/yourusername/matchcast/internal/models"
)

// Snapshot is an immutable view of every team's season statistics, built
// once per ingestion run. Readers share it freely across goroutines; nothing
// mutates it after construction.
type Snapshot struct {
	stats map[string]*models.TeamStats
	teams []string
}

// NewSnapshot builds a snapshot from aggregated team statistics. The input
// map is copied; later mutation of the argument does not leak in.
func NewSnapshot(stats map[string]*models.TeamStats) *Snapshot {
	copied := make(map[string]*models.TeamStats, len(stats))
	teams := make([]string, 0, len(stats))
	for id, s := range stats {
		copied[id] = s
		teams = append(teams, id)
	}
	sort.Strings(teams)

	return &Snapshot{stats: copied, teams: teams}
}

// Lookup resolves a team by exact name match.
func (s *Snapshot) Lookup(teamID string) (*models.TeamStats, bool) {
	stats, ok := s.stats[teamID]
	return stats, ok
}

// Teams returns the sorted team names.
func (s *Snapshot) Teams() []string {
	return s.teams
}

// Len returns the number of teams in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.teams)
}

// Store exposes the current snapshot and allows a scheduled refresh to swap
// in a new one atomically. Readers never block: they pick up whichever
// snapshot is current when their request starts.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// New creates a store seeded with an initial snapshot.
func New(initial *Snapshot) *Store {
	st := &Store{}
	st.current.Store(initial)
	return st
}

// Current returns the active snapshot.
func (st *Store) Current() *Snapshot {
	return st.current.Load()
}

// Swap replaces the active snapshot.
func (st *Store) Swap(next *Snapshot) {
	st.current.Store(next)
}

// Lookup resolves a team in the active snapshot, satisfying
// predict.StatsLookup.
func (st *Store) Lookup(teamID string) (*models.TeamStats, bool) {
	return st.Current().Lookup(teamID)
}
