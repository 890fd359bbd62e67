package store

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

var (
	ErrInvalid = errors.New("invalid")
	timeNow    = func() time.Time { return time.Now().UTC() }
)

// Store reads and rewrites the backing file. Every Save replaces the whole
// file with the list it is given.
type Store struct {
	path   string
	style  Style
	atomic bool
	lock   bool
	unlock func() error
}

// Open binds a store to the file named by cfg. Nothing touches the disk
// until Load or Save.
func Open(cfg Config) *Store {
	style := cfg.Style
	if !style.valid() {
		style = StyleSpaced
	}
	path := cfg.File
	if strings.TrimSpace(path) == "" {
		path = DefaultFile
	}
	return &Store{
		path:   expandHome(path),
		style:  style,
		atomic: cfg.Atomic,
		lock:   cfg.Lock,
	}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Style() Style {
	return s.style
}

// Load reads every task from the backing file, creating it if absent.
// With locking enabled the lock is taken here and held until Close.
func (s *Store) Load() ([]Task, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return s.style.Decode(string(data)), nil
}

// Save replaces the backing file content with tasks.
func (s *Store) Save(tasks []Task) error {
	if err := s.acquire(); err != nil {
		return err
	}
	data := []byte(s.style.Encode(tasks))
	if s.atomic {
		return atomicWriteFile(s.path, data, 0o644)
	}
	return truncateWriteFile(s.path, data, 0o644)
}

// Close releases the advisory lock, if one is held.
func (s *Store) Close() error {
	if s.unlock == nil {
		return nil
	}
	unlock := s.unlock
	s.unlock = nil
	return unlock()
}

func (s *Store) acquire() error {
	if !s.lock || s.unlock != nil {
		return nil
	}
	unlock, err := lockFile(s.lockPath())
	if err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	s.unlock = unlock
	return nil
}

func (s *Store) lockPath() string {
	return s.path + ".lock"
}

func truncateWriteFile(path string, data []byte, perm fs.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, perm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := f.Truncate(0); err != nil {
		_ = f.Close()
		return fmt.Errorf("truncate %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), newULID()))
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func newULID() string {
	t := ulid.Timestamp(timeNow())
	entropy := ulid.Monotonic(randReader{}, 0)
	id, err := ulid.New(t, entropy)
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", timeNow().UnixNano())
	}
	return strings.ToUpper(id.String())
}
