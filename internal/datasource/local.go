package datasource

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/models"
)

// LocalDirSource reads previously downloaded season CSVs from a directory.
// The season label is taken from the file name, so "E0_2023-24.csv" and
// "2023-24.csv" both label their rows "2023-24".
type LocalDirSource struct {
	dir    string
	logger *logrus.Logger
}

// NewLocalDirSource creates the local file tier.
func NewLocalDirSource(dir string, logger *logrus.Logger) *LocalDirSource {
	return &LocalDirSource{dir: dir, logger: logger}
}

// Name returns the source identifier.
func (s *LocalDirSource) Name() string {
	return "local"
}

// FetchMatches loads every readable CSV in the directory, in name order.
// Unparseable files are logged and skipped.
func (s *LocalDirSource) FetchMatches(ctx context.Context) ([]models.Match, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &SourceError{Source: s.Name(), Message: "cannot read data directory", Err: err}
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".csv") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var matches []models.Match
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileMatches, err := s.loadFile(name)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"file":  name,
				"error": err,
			}).Warn("Skipping unreadable data file")
			continue
		}

		s.logger.WithFields(logrus.Fields{
			"file":    name,
			"matches": len(fileMatches),
		}).Info("Loaded local data file")
		matches = append(matches, fileMatches...)
	}

	if len(matches) == 0 {
		return nil, &SourceError{Source: s.Name(), Message: "no usable csv files", Err: ErrNoData}
	}
	return matches, nil
}

func (s *LocalDirSource) loadFile(name string) ([]models.Match, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseMatches(f, seasonFromFilename(name), s.Name())
}

func seasonFromFilename(name string) string {
	season := strings.TrimSuffix(name, ".csv")
	season = strings.TrimPrefix(season, "E0_")
	return season
}
