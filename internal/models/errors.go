package models

import "errors"

// Custom errors
var (
	// ErrUnknownTeam indicates a requested team is absent from the stats store.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrIdenticalTeams indicates home and away identifiers are equal.
	ErrIdenticalTeams = errors.New("home and away teams must be different")

	// ErrMissingStat indicates a required statistic is absent on a team record
	// for the selected backend.
	ErrMissingStat = errors.New("required statistic missing")

	// ErrDegenerateScore indicates a backend returned probabilities summing to zero.
	ErrDegenerateScore = errors.New("degenerate probability scores")

	// ErrNotFound indicates a record was not found in storage.
	ErrNotFound = errors.New("record not found")
)
