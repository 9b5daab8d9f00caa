package datasource

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/matchcast/internal/models"
)

// Required columns in football-data.co.uk match CSVs. Files carry dozens of
// extra columns (referee, odds) which are ignored.
var neededCols = []string{"HomeTeam", "AwayTeam", "FTHG", "FTAG", "FTR", "HS", "AS", "HST", "AST"}

// nameMap folds the provider's long team names onto the short display names
// used throughout the stats store.
var nameMap = map[string]string{
	"Manchester City":         "Man City",
	"Manchester United":       "Man United",
	"Man Utd":                 "Man United",
	"Newcastle United":        "Newcastle",
	"Wolverhampton":           "Wolves",
	"Wolverhampton Wanderers": "Wolves",
	"West Ham United":         "West Ham",
	"Nottingham Forest":       "Nottm Forest",
	"Nott'm Forest":           "Nottm Forest",
	"Leicester City":          "Leicester",
	"Ipswich Town":            "Ipswich",
	"Tottenham Hotspur":       "Tottenham",
}

// CanonicalTeamName maps a provider team name onto its short form. Names
// without a mapping pass through unchanged.
func CanonicalTeamName(name string) string {
	name = strings.TrimSpace(name)
	if short, ok := nameMap[name]; ok {
		return short
	}
	return name
}

// ParseMatches reads a football-data.co.uk CSV. Columns are located by
// header name so column order and extra columns do not matter. Rows missing
// any required value are dropped rather than failing the whole file.
func ParseMatches(r io.Reader, season, source string) ([]models.Match, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range neededCols {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrNoData, name)
		}
	}

	now := time.Now().UTC()
	var matches []models.Match
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed csv: %w", err)
		}

		match, ok := parseRow(record, cols)
		if !ok {
			continue
		}
		match.ID = uuid.New()
		match.Season = season
		match.Source = source
		match.CreatedAt = now
		matches = append(matches, match)
	}

	if len(matches) == 0 {
		return nil, ErrNoData
	}
	return matches, nil
}

func parseRow(record []string, cols map[string]int) (models.Match, bool) {
	field := func(name string) (string, bool) {
		i := cols[name]
		if i >= len(record) {
			return "", false
		}
		v := strings.TrimSpace(record[i])
		return v, v != ""
	}
	intField := func(name string) (int, bool) {
		s, ok := field(name)
		if !ok {
			return 0, false
		}
		// Some files store counts as floats ("12.0").
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return 0, false
		}
		return int(f), true
	}

	var m models.Match
	var ok bool

	if m.HomeTeam, ok = field("HomeTeam"); !ok {
		return m, false
	}
	if m.AwayTeam, ok = field("AwayTeam"); !ok {
		return m, false
	}
	m.HomeTeam = CanonicalTeamName(m.HomeTeam)
	m.AwayTeam = CanonicalTeamName(m.AwayTeam)

	if m.Result, ok = field("FTR"); !ok {
		return m, false
	}
	switch m.Result {
	case models.ResultHomeWin, models.ResultDraw, models.ResultAwayWin:
	default:
		return m, false
	}

	if m.HomeGoals, ok = intField("FTHG"); !ok {
		return m, false
	}
	if m.AwayGoals, ok = intField("FTAG"); !ok {
		return m, false
	}
	if m.HomeShots, ok = intField("HS"); !ok {
		return m, false
	}
	if m.AwayShots, ok = intField("AS"); !ok {
		return m, false
	}
	if m.HomeShotsOnTarget, ok = intField("HST"); !ok {
		return m, false
	}
	if m.AwayShotsOnTarget, ok = intField("AST"); !ok {
		return m, false
	}

	return m, true
}
