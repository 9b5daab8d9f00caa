package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB.
const MaxBodySize = 1048576

// PredictRequest is the body of POST /api/predict. Backend is optional and
// selects an estimator by name; the server default is used when empty.
type PredictRequest struct {
	HomeTeam string `json:"home_team" validate:"required"`
	AwayTeam string `json:"away_team" validate:"required"`
	Backend  string `json:"backend" validate:"omitempty,oneof=heuristic learned"`
}

// Probabilities carries the normalized outcome percentages. They carry one
// decimal of precision and sum to exactly 100.0.
type Probabilities struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
}

// FairOdds carries break-even decimal odds per outcome, two decimals.
type FairOdds struct {
	HomeWin string `json:"home_win"`
	Draw    string `json:"draw"`
	AwayWin string `json:"away_win"`
}

// TeamComparison is a side-by-side summary of the two teams' season form.
type TeamComparison struct {
	HomePPG      float64 `json:"home_ppg"`
	AwayPPG      float64 `json:"away_ppg"`
	HomeGoalsAvg float64 `json:"home_goals_avg"`
	AwayGoalsAvg float64 `json:"away_goals_avg"`
	HomeWinRate  float64 `json:"home_win_rate"`
	AwayWinRate  float64 `json:"away_win_rate"`
}

// ModelInfo summarizes the backend that produced a prediction.
type ModelInfo struct {
	Type     string   `json:"type"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

// PredictResponse is the body of a successful POST /api/predict.
type PredictResponse struct {
	Prediction     string         `json:"prediction"`
	Probabilities  Probabilities  `json:"probabilities"`
	FairOdds       FairOdds       `json:"fair_odds"`
	Confidence     float64        `json:"confidence"`
	HomeTeam       string         `json:"home_team"`
	AwayTeam       string         `json:"away_team"`
	Backend        string         `json:"backend"`
	ModelInfo      ModelInfo      `json:"model_info"`
	TeamComparison TeamComparison `json:"team_comparison"`
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	teams := s.store.Current().Teams()
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.HomeTeam == "" || req.AwayTeam == "" {
		s.errorResponse(w, http.StatusBadRequest, "Please select both teams")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Unknown backend %q", req.Backend))
		return
	}

	backend := req.Backend
	if backend == "" {
		backend = s.defaultBackend
	}
	svc, ok := s.predictors[backend]
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Backend %q is not available", backend))
		return
	}

	result, err := svc.Predict(r.Context(), req.HomeTeam, req.AwayTeam)
	if err != nil {
		s.predictError(w, err)
		return
	}

	if s.confThreshold > 0 && !result.MeetsThreshold(s.confThreshold) {
		s.logger.WithFields(logrus.Fields{
			"home_team":  req.HomeTeam,
			"away_team":  req.AwayTeam,
			"backend":    result.Backend,
			"confidence": result.Confidence,
			"threshold":  s.confThreshold,
		}).Warn("Prediction confidence below threshold")
	}

	snapshot := s.store.Current()
	home, _ := snapshot.Lookup(req.HomeTeam)
	away, _ := snapshot.Lookup(req.AwayTeam)

	s.jsonResponse(w, http.StatusOK, PredictResponse{
		Prediction: string(result.Outcome),
		Probabilities: Probabilities{
			HomeWin: result.HomeWinPct,
			Draw:    result.DrawPct,
			AwayWin: result.AwayWinPct,
		},
		FairOdds:       fairOdds(result),
		Confidence:     result.Confidence,
		HomeTeam:       req.HomeTeam,
		AwayTeam:       req.AwayTeam,
		Backend:        result.Backend,
		ModelInfo:      s.modelInfo(backend),
		TeamComparison: compareTeams(home, away),
	})
}

// predictError maps pipeline errors to HTTP statuses. Input errors are 400;
// a degenerate score means the backend itself is broken and is a 500.
func (s *Server) predictError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrIdenticalTeams):
		s.errorResponse(w, http.StatusBadRequest, "Home and away teams must be different")
	case errors.Is(err, models.ErrUnknownTeam):
		s.errorResponse(w, http.StatusBadRequest, "Unknown team selected")
	case errors.Is(err, models.ErrMissingStat):
		s.errorResponse(w, http.StatusBadRequest, "Selected backend requires shot statistics that are unavailable")
	default:
		s.logger.WithError(err).Error("Prediction failed")
		s.errorResponse(w, http.StatusInternalServerError, "Prediction failed")
	}
}

func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"default_backend": s.defaultBackend,
		"backends":        s.backendNames(),
		"teams":           s.store.Current().Len(),
	}

	if s.artifact != nil {
		info["model_type"] = s.artifact.ModelType
		info["model_id"] = s.artifact.ModelID
		info["feature_count"] = len(s.artifact.FeatureCols)
		info["train_samples"] = s.artifact.Metadata.TrainSamples
		info["test_samples"] = s.artifact.Metadata.TestSamples
		info["test_accuracy"] = s.artifact.Metadata.TestAccuracy
		info["cv_accuracy"] = s.artifact.Metadata.CVAccuracy
		info["cv_std"] = s.artifact.Metadata.CVStd
		info["classes"] = s.artifact.Metadata.Classes
		info["trained_at"] = s.artifact.Metadata.TrainedAt
	}

	s.jsonResponse(w, http.StatusOK, info)
}

func (s *Server) backendNames() []string {
	names := make([]string, 0, len(s.predictors))
	for name := range s.predictors {
		names = append(names, name)
	}
	return names
}

func (s *Server) modelInfo(backend string) ModelInfo {
	info := ModelInfo{Type: backend}
	if backend == "learned" && s.artifact != nil {
		info.Type = s.artifact.ModelType
		acc := round1(s.artifact.Metadata.TestAccuracy * 100)
		info.Accuracy = &acc
	}
	return info
}

// compareTeams mirrors the team_comparison block of the prediction response.
// Both stats are present by the time this runs; a prediction already
// succeeded for the pair.
func compareTeams(home, away *models.TeamStats) TeamComparison {
	if home == nil || away == nil {
		return TeamComparison{}
	}
	return TeamComparison{
		HomePPG:      round2(home.PointsPerGame),
		AwayPPG:      round2(away.PointsPerGame),
		HomeGoalsAvg: round2(home.GoalsScoredAvg),
		AwayGoalsAvg: round2(away.GoalsScoredAvg),
		HomeWinRate:  round1(home.WinRate * 100),
		AwayWinRate:  round1(away.WinRate * 100),
	}
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
