package fs

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/enrzones"
)

// Ensure Store implements enrzones.ResultWriter at compile time.
var _ enrzones.ResultWriter = (*Store)(nil)

// Store writes results with atomic update semantics.
// Results are saved to a temporary directory, then moved atomically on
// Commit, so a failed run never leaves a half-written output directory.
type Store struct {
	baseDir string
	name    string

	// reset clears a temp directory left behind by an earlier run
	// before the first write.
	reset    sync.Once
	resetErr error
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteResult saves a result to the temporary directory.
// A temp directory left over from an interrupted run is removed first.
func (s *Store) WriteResult(ctx context.Context, result *enrzones.Result) error {
	s.reset.Do(func() {
		s.resetErr = os.RemoveAll(s.tempDir())
	})
	if s.resetErr != nil {
		return s.resetErr
	}
	return writeResult(s.tempDir(), result)
}

// Commit replaces the output directory with everything written so far.
func (s *Store) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything written since the last Commit.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
