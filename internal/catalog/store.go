package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"shopkeeper/internal/diagnostic"
	"shopkeeper/internal/logging"
)

// Store owns the config file and publishes the current Catalog.
//
// Catalog may be called from any goroutine at any time. Load, CreateShop and
// DeleteShop are single-writer operations: callers must not run them
// concurrently with each other.
type Store struct {
	path     string
	compiler *Compiler
	logger   *zap.Logger
	current  atomic.Pointer[Catalog]
}

// NewStore creates a Store for the config file at path. The store starts
// with an empty catalog until Load succeeds.
func NewStore(path string, compiler *Compiler, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{path: path, compiler: compiler, logger: logger}
	s.current.Store(Empty())

	return s
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Catalog returns the current snapshot.
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// Load reads and compiles the config file and publishes the result. When the
// file does not exist the default document is written first. On error the
// previous snapshot stays in place.
func (s *Store) Load() (*diagnostic.Diagnostics, error) {
	if err := s.ensureFile(); err != nil {
		s.logger.Error("Failed to create default config", zap.String("path", s.path), zap.Error(err))
		return nil, err
	}

	doc, err := LoadFile(s.path)
	if err != nil {
		s.logger.Error("Failed to load config", zap.String("path", s.path), zap.Error(err))
		return nil, err
	}

	cat, diags := s.compiler.Compile(doc)
	logging.Emit(s.logger, diags)

	s.current.Store(cat)

	s.logger.Info("Loaded shops",
		zap.String("path", s.path),
		zap.Int("shops", cat.Len()),
		zap.String("default_shop", cat.DefaultShopID()),
		zap.Int("diagnostics", diags.Len()))

	return diags, nil
}

// CreateShop adds a shop with one example trade to the config file and
// reloads. The in-memory catalog is only replaced after the save succeeds.
func (s *Store) CreateShop(name string) error {
	return s.edit("create", name, CreateShop)
}

// DeleteShop removes a shop from the config file and reloads.
func (s *Store) DeleteShop(name string) error {
	return s.edit("delete", name, DeleteShop)
}

func (s *Store) edit(op, name string, apply func(doc *yaml.Node, name string) (*yaml.Node, error)) error {
	doc, err := LoadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Error("Failed to "+op+" shop", zap.String("shop", name), zap.Error(err))
		return err
	}

	edited, err := apply(doc, name)
	if err != nil {
		return err
	}

	if err := WriteFile(edited, s.path); err != nil {
		s.logger.Error("Failed to save config", zap.String("path", s.path), zap.Error(err))
		return err
	}

	if _, err := s.Load(); err != nil {
		return fmt.Errorf("saved config but reload failed: %w", err)
	}

	return nil
}

func (s *Store) ensureFile() error {
	_, err := os.Stat(s.path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	s.logger.Info("Writing default config", zap.String("path", s.path))

	return writeAtomic(s.path, DefaultDocument)
}
