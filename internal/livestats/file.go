package livestats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type file struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns store which keeps stats in JSON file.
// Writes are serialized inside the process and the file is replaced atomically.
func NewFileStore(path string) Store {
	return &file{path: path}
}

// Get ...
func (f *file) Get(_ context.Context) (*Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.read()
}

// Apply ...
func (f *file) Apply(_ context.Context, a Action) (*Stats, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	s, err := f.read()
	if err != nil {
		return nil, err
	}

	apply(s, a, time.Now().UTC())

	if err := f.write(s); err != nil {
		return nil, err
	}

	return s, nil
}

func (f *file) read() (*Stats, error) {
	s := Stats{Chat: []ChatMessage{}}

	data, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		log.WithError(err).WithField("path", f.path).Warn("stats file is corrupted, starting from scratch")
		return &Stats{Chat: []ChatMessage{}}, nil
	}
	if s.Chat == nil {
		s.Chat = []ChatMessage{}
	}

	return &s, nil
}

func (f *file) write(s *Stats) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create stats dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // nolint

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() // nolint
		return fmt.Errorf("failed to write stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace stats: %w", err)
	}

	return nil
}
