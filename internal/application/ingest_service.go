package application

import (
	"context"
	"fmt"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
	"go.uber.org/zap"
)

type IngestService struct {
	repo   ports.EventRepository
	parser ports.LineParser
	logger *zap.Logger
}

func NewIngestService(repo ports.EventRepository, parser ports.LineParser, logger *zap.Logger) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &IngestService{repo: repo, parser: parser, logger: logger}
}

// Ingest stores an event for every recognised line and returns the event ids
// in line order. Repeated lines yield the id of the event already stored.
func (s *IngestService) Ingest(ctx context.Context, lines []string) ([]domain.EventID, error) {
	ids := make([]domain.EventID, 0, len(lines))
	skipped := 0

	for _, line := range lines {
		key, ok := s.parser.Parse(line)
		if !ok {
			skipped++
			continue
		}

		id, err := s.repo.Insert(ctx, key)
		if err != nil {
			return ids, fmt.Errorf("insert event from %s: %w", key.Device, err)
		}
		ids = append(ids, id)
	}

	s.logger.Debug("ingested log lines", zap.Int("events", len(ids)), zap.Int("skipped", skipped))

	return ids, nil
}
