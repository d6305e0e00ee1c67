package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// FileName is the settings file name inside the config directory.
const FileName = "settings.json"

// DefaultPath returns the settings file path under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rubra", FileName), nil
}

// Load reads the document at path. When no file exists, the default
// document is written there and returned. A file that exists but cannot
// be read or decoded is an error; it is never replaced with defaults.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		doc := Default()
		if err := Save(path, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w: %v", path, ErrInvalidDocument, err)
	}
	if err := doc.Validate(); errors.Is(err, ErrInvalidDocument) {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return &doc, nil
}

// Save writes the whole document to path, replacing any existing file.
func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	// Write to a sibling temp file and rename so a crash never leaves a
	// truncated settings file behind.
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

// Store owns the settings document. Mutations are persisted immediately
// and then pushed to subscribers.
type Store struct {
	path   string
	logger *logrus.Logger

	mu     sync.Mutex
	doc    *Document
	subs   map[int]func(*Document)
	nextID int
}

// Open loads the document at path into a new Store.
func Open(path string, logger *logrus.Logger) (*Store, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		// First match wins on mutation; keep loading but make it visible.
		logger.WithField("path", path).WithError(err).Warn("Settings file has duplicate keys")
	}
	if _, unknown := Compile(doc); len(unknown) > 0 {
		logger.WithFields(logrus.Fields{
			"path": path,
			"keys": unknown,
		}).Warn("Settings file contains unknown keys")
	}

	return &Store{
		path:   path,
		logger: logger,
		doc:    doc,
		subs:   make(map[int]func(*Document)),
	}, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Document returns a copy of the current document.
func (s *Store) Document() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Get returns the current value of key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Get(key)
}

// Set changes one setting, saves the document and notifies subscribers.
// An unknown key is a no-op and reports false.
func (s *Store) Set(key, value string) (bool, error) {
	s.mu.Lock()
	if !s.doc.Set(key, value) {
		s.mu.Unlock()
		return false, nil
	}
	if err := Save(s.path, s.doc); err != nil {
		s.mu.Unlock()
		return true, err
	}
	snapshot := s.doc.Clone()
	subs := s.subscribers()
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"key":   key,
		"value": value,
	}).Info("Setting changed")

	notify(subs, snapshot)
	return true, nil
}

// Toggle sets key to the canonical value for on.
func (s *Store) Toggle(key string, on bool) (bool, error) {
	return s.Set(key, FormatBool(on))
}

// Reset replaces the document with the defaults, saves and notifies.
func (s *Store) Reset() error {
	s.mu.Lock()
	doc := Default()
	if err := Save(s.path, doc); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = doc
	snapshot := doc.Clone()
	subs := s.subscribers()
	s.mu.Unlock()

	s.logger.WithField("path", s.path).Info("Settings reset to defaults")
	notify(subs, snapshot)
	return nil
}

// Subscribe registers fn to receive the document after every change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(*Document)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// subscribers returns the current callbacks in registration order.
// Callers must hold s.mu.
func (s *Store) subscribers() []func(*Document) {
	out := make([]func(*Document), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(subs []func(*Document), doc *Document) {
	for _, fn := range subs {
		fn(doc)
	}
}
