package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/minafoods/newsclip/internal/logger"
)

// Store persists a taxonomy to a single YAML file. Every mutation rewrites
// the whole file; there is a single operator and no concurrent writer.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted taxonomy. A missing or unreadable file yields the
// built-in default instead of an error; the operator can always start over.
func (s *Store) Load() *Taxonomy {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("keywords file unreadable, using defaults", "path", s.path, "error", err)
		}
		return Default()
	}

	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		logger.Warn("keywords file malformed, using defaults", "path", s.path, "error", err)
		return Default()
	}
	return &t
}

// Save rewrites the keywords file in full, via a temp file in the same
// directory so a crash mid-write cannot leave a half-written taxonomy.
func (s *Store) Save(t *Taxonomy) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create keywords dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".keywords-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp keywords file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write keywords file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close keywords file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace keywords file: %w", err)
	}
	return nil
}

// AddCategory inserts an empty category and persists when anything changed.
func (s *Store) AddCategory(t *Taxonomy, name string) error {
	if t.AddCategory(name) {
		return s.Save(t)
	}
	return nil
}

// AddKeyword appends a keyword to a category and persists when anything
// changed. Returns ErrUnknownCategory for an absent category.
func (s *Store) AddKeyword(t *Taxonomy, category, keyword string) error {
	changed, err := t.AddKeyword(category, keyword)
	if err != nil {
		return err
	}
	if changed {
		return s.Save(t)
	}
	return nil
}

// RemoveCategory deletes a category and persists when anything changed.
func (s *Store) RemoveCategory(t *Taxonomy, name string) error {
	if t.RemoveCategory(name) {
		return s.Save(t)
	}
	return nil
}

// RemoveKeyword deletes a keyword and persists when anything changed.
func (s *Store) RemoveKeyword(t *Taxonomy, category, keyword string) error {
	if t.RemoveKeyword(category, keyword) {
		return s.Save(t)
	}
	return nil
}
