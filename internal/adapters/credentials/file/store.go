package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports"
	"go.uber.org/zap"
)

const (
	storeDirMode    = 0o700
	entryFileMode   = 0o600
	entryExt        = ".json"
	tempFilePattern = ".entry-*.tmp"
)

// Store keeps a credential bundle as a directory of files, one per entry.
type Store struct {
	root   string
	logger *zap.Logger
	mu     sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(root string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{root: filepath.Clean(root), logger: logger}
}

func (s *Store) Root() string {
	return s.root
}

// Load returns every entry in the directory. A missing directory is an
// empty bundle, not an error.
func (s *Store) Load(ctx context.Context) (domain.CredentialBundle, error) {
	if err := ctx.Err(); err != nil {
		return domain.CredentialBundle{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.CredentialBundle{Entries: map[string][]byte{}}, nil
		}
		return domain.CredentialBundle{}, fmt.Errorf("read credentials directory: %w", err)
	}

	bundle := domain.CredentialBundle{Entries: make(map[string][]byte, len(dirEntries))}
	for _, entry := range dirEntries {
		name, ok := entryName(entry)
		if !ok {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.root, entry.Name()))
		if err != nil {
			return domain.CredentialBundle{}, fmt.Errorf("read credential entry %q: %w", name, err)
		}
		bundle.Entries[name] = data
	}

	s.logger.Debug("credentials loaded", zap.String("dir", s.root), zap.Int("entries", len(bundle.Entries)))
	return bundle, nil
}

// Save writes every entry of the bundle. Entries are replaced atomically one
// by one; entries absent from the bundle are left on disk and a nil entry
// removes its file.
func (s *Store) Save(ctx context.Context, bundle domain.CredentialBundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	for _, name := range bundle.Names() {
		path, err := s.pathForEntry(name)
		if err != nil {
			return err
		}
		data := bundle.Entries[name]
		if data == nil {
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("remove credential entry %q: %w", name, err)
			}
			continue
		}
		if err := writeAtomic(path, data); err != nil {
			return fmt.Errorf("write credential entry %q: %w", name, err)
		}
	}

	s.logger.Debug("credentials saved", zap.String("dir", s.root), zap.Int("entries", len(bundle.Entries)))
	return nil
}

// Clear removes the whole bundle. It is idempotent.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.root); err != nil {
		return fmt.Errorf("remove credentials directory: %w", err)
	}

	return nil
}

func (s *Store) pathForEntry(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.New("credential entry name is empty")
	}
	if strings.ContainsAny(trimmed, `/\`) || trimmed == "." || trimmed == ".." || strings.HasPrefix(trimmed, ".") {
		return "", fmt.Errorf("invalid credential entry name %q", name)
	}

	return filepath.Join(s.root, trimmed+entryExt), nil
}

func entryName(entry os.DirEntry) (string, bool) {
	if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
		return "", false
	}

	name, ok := strings.CutSuffix(entry.Name(), entryExt)
	if !ok || name == "" {
		return "", false
	}

	return name, true
}

func writeAtomic(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
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
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Chmod(entryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	cleanup = false
	return nil
}
