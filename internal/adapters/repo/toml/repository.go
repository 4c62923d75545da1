package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StorePathKey     = "store.path"
	DefaultListLimit = 1000

	eventsFileMode   = 0o600
	eventsDirMode    = 0o700
	eventsConfigDir  = ".config/remedy"
	eventsConfigFile = "events.toml"
	tempFilePattern  = ".events-*.toml.tmp"
)

type Repository struct {
	eventsPath string
	clock      ports.Clock
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.EventRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper, clock ports.Clock) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	eventsPath := cfg.GetString(StorePathKey)
	if eventsPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		eventsPath = filepath.Join(homeDir, eventsConfigDir, eventsConfigFile)
	}

	eventsPath, err := normalizeEventsPath(eventsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{eventsPath: eventsPath, clock: clock, mu: lockForPath(eventsPath)}, nil
}

func (r *Repository) Path() string {
	return r.eventsPath
}

// Insert stores a new event unless one with the same identity key exists,
// in which case the existing id is returned.
func (r *Repository) Insert(ctx context.Context, key domain.IdentityKey) (domain.EventID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return 0, err
	}

	for _, entry := range file.Events {
		if fromSchema(entry).Key() == key {
			return domain.EventID(entry.ID), nil
		}
	}

	entry := eventSchema{
		ID:           file.NextID,
		Timestamp:    key.Timestamp,
		Device:       key.Device,
		ErrorCode:    key.ErrorCode,
		ErrorMessage: key.ErrorMessage,
		Result:       int(domain.ResultUnset),
		ObservedAt:   formatTime(r.clock.Now()),
	}
	file.Events = append(file.Events, entry)
	file.NextID++

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := r.writeSchema(file); err != nil {
		return 0, err
	}

	return domain.EventID(entry.ID), nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.EventID) (domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return domain.Event{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Event{}, err
	}

	for _, entry := range file.Events {
		if entry.ID == int64(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Event{}, domain.ErrEventNotFound
}

func (r *Repository) UpdateResult(ctx context.Context, id domain.EventID, result domain.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !result.Valid() {
		return fmt.Errorf("invalid event result %d", int(result))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	updated := false
	for i := range file.Events {
		if file.Events[i].ID == int64(id) {
			file.Events[i].Result = int(result)
			updated = true
			break
		}
	}
	if !updated {
		return domain.ErrEventNotFound
	}

	return r.writeSchema(file)
}

// List returns up to limit events in insertion order. A non-positive limit
// means DefaultListLimit.
func (r *Repository) List(ctx context.Context, limit int) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, min(limit, len(file.Events)))
	for _, entry := range file.Events {
		if len(events) == limit {
			break
		}
		events = append(events, fromSchema(entry))
	}

	return events, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.eventsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read events file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode events file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeEventsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve events path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.eventsPath), eventsDirMode); err != nil {
		return fmt.Errorf("create events directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode events file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.eventsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp events file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp events file: %w", err)
	}

	if err := tempFile.Chmod(eventsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp events file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp events file: %w", err)
	}

	if err := os.Rename(tempName, r.eventsPath); err != nil {
		return fmt.Errorf("replace events file: %w", err)
	}

	cleanup = false

	return nil
}

func fromSchema(entry eventSchema) domain.Event {
	return domain.Event{
		ID:           domain.EventID(entry.ID),
		Timestamp:    entry.Timestamp,
		Device:       entry.Device,
		ErrorCode:    entry.ErrorCode,
		ErrorMessage: entry.ErrorMessage,
		Result:       domain.Result(entry.Result),
		ObservedAt:   parseTime(entry.ObservedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
