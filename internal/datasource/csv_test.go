package datasource

import (
	"strings"
	"testing"

	"github.com/yourusername/matchcast/internal/models"
)

func TestParseMatches(t *testing.T) {
	data := `Div,Date,HomeTeam,AwayTeam,FTHG,FTAG,FTR,HS,AS,HST,AST,Referee
E0,12/08/2023,Arsenal,Nottingham Forest,2,1,H,16,5,8,2,M Oliver
E0,12/08/2023,Burnley,Manchester City,0,3,A,9,17,2,8,C Pawson
`
	matches, err := ParseMatches(strings.NewReader(data), "2023-24", "test")
	if err != nil {
		t.Fatalf("ParseMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	m := matches[0]
	if m.HomeTeam != "Arsenal" || m.AwayTeam != "Nottm Forest" {
		t.Errorf("team names not canonicalized: %s vs %s", m.HomeTeam, m.AwayTeam)
	}
	if m.HomeGoals != 2 || m.AwayGoals != 1 || m.Result != models.ResultHomeWin {
		t.Errorf("unexpected score: %d-%d %s", m.HomeGoals, m.AwayGoals, m.Result)
	}
	if m.HomeShots != 16 || m.AwayShots != 5 || m.HomeShotsOnTarget != 8 || m.AwayShotsOnTarget != 2 {
		t.Errorf("unexpected shot counts: %+v", m)
	}
	if m.Season != "2023-24" || m.Source != "test" {
		t.Errorf("unexpected provenance: season=%s source=%s", m.Season, m.Source)
	}
	if matches[1].AwayTeam != "Man City" {
		t.Errorf("expected Man City, got %s", matches[1].AwayTeam)
	}
}

func TestParseMatchesDropsBadRows(t *testing.T) {
	data := `HomeTeam,AwayTeam,FTHG,FTAG,FTR,HS,AS,HST,AST
Arsenal,Chelsea,1,0,H,12,8,5,3
Everton,Fulham,,1,A,7,11,3,5
Brighton,Luton,4,1,X,18,8,8,3
Liverpool,Bournemouth,3,1,H,-2,6,9,2
Wolves,Brentford,1,1,D,10,9,4,4
`
	matches, err := ParseMatches(strings.NewReader(data), "2023-24", "test")
	if err != nil {
		t.Fatalf("ParseMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected rows with missing goals, bad result codes or negative shots dropped, got %d matches", len(matches))
	}
	if matches[0].HomeTeam != "Arsenal" || matches[1].HomeTeam != "Wolves" {
		t.Errorf("kept wrong rows: %s, %s", matches[0].HomeTeam, matches[1].HomeTeam)
	}
}

func TestParseMatchesMissingColumn(t *testing.T) {
	data := "HomeTeam,AwayTeam,FTHG,FTAG,FTR\nArsenal,Chelsea,1,0,H\n"

	if _, err := ParseMatches(strings.NewReader(data), "2023-24", "test"); err == nil {
		t.Fatal("expected error for missing shot columns")
	}
}

func TestParseMatchesEmptyFile(t *testing.T) {
	data := "HomeTeam,AwayTeam,FTHG,FTAG,FTR,HS,AS,HST,AST\n"

	if _, err := ParseMatches(strings.NewReader(data), "2023-24", "test"); err == nil {
		t.Fatal("expected error for file with no rows")
	}
}

func TestCanonicalTeamName(t *testing.T) {
	cases := map[string]string{
		"Manchester City":   "Man City",
		"Man Utd":           "Man United",
		"Nott'm Forest":     "Nottm Forest",
		"Tottenham Hotspur": "Tottenham",
		"Arsenal":           "Arsenal",
		" Wolves ":          "Wolves",
	}
	for in, want := range cases {
		if got := CanonicalTeamName(in); got != want {
			t.Errorf("CanonicalTeamName(%q) = %q, want %q", in, got, want)
		}
	}
}
