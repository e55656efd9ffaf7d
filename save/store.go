package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Store persists loadouts by profile id.
type Store interface {
	Save(ctx context.Context, l Loadout) error
	Load(ctx context.Context, profile uuid.UUID) (Loadout, error)
}

// FileStore keeps one YAML file per profile in Dir.
type FileStore struct {
	Dir string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(profile uuid.UUID) string {
	return filepath.Join(s.Dir, profile.String()+".yaml")
}

func (s *FileStore) Save(_ context.Context, l Loadout) error {
	if l.ProfileID == uuid.Nil {
		return ErrNoProfile
	}
	data, err := yaml.Marshal(&l)
	if err != nil {
		return fmt.Errorf("save: marshal %s: %w", l.ProfileID, err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("save: create %s: %w", s.Dir, err)
	}
	tmp := s.path(l.ProfileID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path(l.ProfileID)); err != nil {
		return fmt.Errorf("save: commit %s: %w", l.ProfileID, err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context, profile uuid.UUID) (Loadout, error) {
	data, err := os.ReadFile(s.path(profile))
	if errors.Is(err, fs.ErrNotExist) {
		return Loadout{}, fmt.Errorf("save: load %s: %w", profile, ErrNotFound)
	}
	if err != nil {
		return Loadout{}, fmt.Errorf("save: load %s: %w", profile, err)
	}
	return decode(profile, data)
}

func decode(profile uuid.UUID, data []byte) (Loadout, error) {
	var l Loadout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Loadout{}, fmt.Errorf("save: unmarshal %s: %w", profile, err)
	}
	return l, nil
}
