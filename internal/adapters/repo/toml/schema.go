package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	NextID  int64         `toml:"next_id"`
	Events  []eventSchema `toml:"events"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}

	var maxID int64
	for _, event := range s.Events {
		maxID = max(maxID, event.ID)
	}
	if s.NextID <= maxID {
		s.NextID = maxID + 1
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported events schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type eventSchema struct {
	ID           int64  `toml:"id"`
	Timestamp    string `toml:"timestamp"`
	Device       string `toml:"device"`
	ErrorCode    string `toml:"error_code"`
	ErrorMessage string `toml:"error_message"`
	Result       int    `toml:"result"`
	ObservedAt   string `toml:"observed_at,omitempty"`
}
