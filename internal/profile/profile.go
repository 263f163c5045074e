// Package profile manages the on-disk layout of templates, instances and
// ephemeral copies. Profiles are addressed purely by directory name; there
// is no metadata file and no locking.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"newchrome/internal/config"
	"newchrome/internal/fsutil"

	"github.com/google/uuid"
)

// ErrInvalidName is returned for names that cannot be used as a single path
// component.
var ErrInvalidName = errors.New("invalid profile name")

// NewID generates the suffix for ephemeral copy directories.
var NewID = func() string {
	return uuid.NewString()
}

// Store resolves and mutates profile directories.
type Store struct {
	templatesDir string
	profilesDir  string
	tempDir      string
}

// NewStore returns a Store rooted at the directories resolved by cfg.
func NewStore(cfg *config.Config) *Store {
	return &Store{
		templatesDir: cfg.TemplatesDir(),
		profilesDir:  cfg.ProfilesDir(),
		tempDir:      cfg.TempDir(),
	}
}

// ValidateName rejects names that would escape or alias the profile roots.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// TemplatePath returns the template directory for name.
func (s *Store) TemplatePath(name string) string {
	return filepath.Join(s.templatesDir, name)
}

// InstancePath returns the instance directory for name.
func (s *Store) InstancePath(name string) string {
	return filepath.Join(s.profilesDir, name)
}

// EphemeralPath returns the throwaway directory for name and id.
func (s *Store) EphemeralPath(name, id string) string {
	return filepath.Join(s.tempDir, name+"-"+id)
}

// HasTemplate reports whether a template directory exists for name.
func (s *Store) HasTemplate(name string) bool {
	return fsutil.IsDir(s.TemplatePath(name))
}

// HasInstance reports whether an instance directory exists for name.
func (s *Store) HasInstance(name string) bool {
	return fsutil.IsDir(s.InstancePath(name))
}

// Materialize copies the template for name into its instance directory
// unless the instance already exists. existed reports the latter case,
// which is not an error.
func (s *Store) Materialize(name string) (existed bool, err error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}
	if fsutil.Exists(s.InstancePath(name)) {
		return true, nil
	}
	// A concurrent launch may still win the race; treat that the same way.
	err = fsutil.CopyDir(s.TemplatePath(name), s.InstancePath(name), fsutil.CopyOptions{})
	if errors.Is(err, fs.ErrExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create instance %q from template: %w", name, err)
	}
	return false, nil
}

// Ephemeral copies the instance for name into a fresh directory under the
// temp root and returns its path. The copy is never cleaned up by us.
func (s *Store) Ephemeral(name, id string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("ephemeral copy of %q needs a non-empty id", name)
	}
	dir := s.EphemeralPath(name, id)
	if err := fsutil.CopyDir(s.InstancePath(name), dir, fsutil.CopyOptions{Overwrite: true}); err != nil {
		return "", fmt.Errorf("failed to write ephemeral copy of %q to temp directory: %w", name, err)
	}
	return dir, nil
}

// EnsureTemplate creates the template directory for name if needed and
// returns its path.
func (s *Store) EnsureTemplate(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	dir := s.TemplatePath(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create template %q: %w", name, err)
	}
	return dir, nil
}

// Save copies the instance for name over its template.
func (s *Store) Save(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := fsutil.CopyDir(s.InstancePath(name), s.TemplatePath(name), fsutil.CopyOptions{Overwrite: true}); err != nil {
		return fmt.Errorf("failed to save instance %q to template: %w", name, err)
	}
	return nil
}

// Reset removes the instance for name. The template is left alone.
func (s *Store) Reset(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return fsutil.RemoveAll(s.InstancePath(name))
}

// ResetAll removes every instance and returns the names removed, in
// directory read order.
func (s *Store) ResetAll() ([]string, error) {
	names, err := readNames(s.profilesDir)
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		if err := fsutil.RemoveAll(s.InstancePath(name)); err != nil {
			return names[:i], err
		}
	}
	return names, nil
}

// Remove deletes both the template and the instance for name.
func (s *Store) Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := fsutil.RemoveAll(s.TemplatePath(name)); err != nil {
		return err
	}
	return fsutil.RemoveAll(s.InstancePath(name))
}

// List returns template names starting with prefix in the order the
// filesystem returns them. An empty prefix matches everything.
func (s *Store) List(prefix string) ([]string, error) {
	names, err := readNames(s.templatesDir)
	if err != nil {
		return nil, err
	}
	filtered := names[:0]
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			filtered = append(filtered, name)
		}
	}
	return filtered, nil
}

// readNames lists entry names without sorting, unlike os.ReadDir.
func readNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	return names, nil
}
