package syslog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Follower tails a log file. The parent directory is watched so the file can
// be rotated or created after following starts.
type Follower struct {
	path   string
	logger *zap.Logger

	offset  int64
	partial []byte
}

func NewFollower(path string, logger *zap.Logger) *Follower {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Follower{path: filepath.Clean(path), logger: logger}
}

// Follow emits lines appended to the file until ctx ends, then closes the
// channel. With fromStart the existing content is emitted first.
func (f *Follower) Follow(ctx context.Context, fromStart bool) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(f.path), err)
	}

	if !fromStart {
		if info, err := os.Stat(f.path); err == nil {
			f.offset = info.Size()
		}
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		defer watcher.Close()

		if fromStart && !f.drain(ctx, lines) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != f.path {
					continue
				}
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					f.offset = 0
					f.partial = nil
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if !f.drain(ctx, lines) {
						return
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				f.logger.Warn("log watcher error", zap.String("path", f.path), zap.Error(err))
			}
		}
	}()

	return lines, nil
}

// drain reads from the saved offset and emits every complete line. It
// returns false when ctx ended while emitting.
func (f *Follower) drain(ctx context.Context, lines chan<- string) bool {
	data, err := f.readNew()
	if err != nil {
		f.logger.Warn("read followed log", zap.String("path", f.path), zap.Error(err))
		return true
	}

	f.partial = append(f.partial, data...)
	for {
		i := bytes.IndexByte(f.partial, '\n')
		if i < 0 {
			return true
		}
		line := strings.TrimRight(string(f.partial[:i]), "\r")
		f.partial = f.partial[i+1:]

		select {
		case lines <- line:
		case <-ctx.Done():
			return false
		}
	}
}

func (f *Follower) readNew() ([]byte, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() < f.offset {
		f.logger.Info("followed log truncated", zap.String("path", f.path))
		f.offset = 0
		f.partial = nil
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	f.offset += int64(len(data))

	return data, nil
}
