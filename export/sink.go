package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirSink writes each blob to a file named after it inside Dir.
// The directory is created on first use.
type DirSink struct {
	Dir string
}

// NewDirSink returns a DirSink rooted at dir ("" means the working directory).
func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

// Put writes body to Dir/name, replacing any existing file.
func (s *DirSink) Put(ctx context.Context, name string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
