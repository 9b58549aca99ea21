package fs

import (
	"context"
	"os"

	"github.com/trebuchet-org/deployer-kit/internal/domain/config"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
)

// FileWriterAdapter handles file system operations for scripts. Relative
// paths are resolved against the project root.
type FileWriterAdapter struct {
	config *config.RuntimeConfig
}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter(cfg *config.RuntimeConfig) *FileWriterAdapter {
	return &FileWriterAdapter{config: cfg}
}

// WriteScript writes content to a file, replacing any previous version
func (f *FileWriterAdapter) WriteScript(ctx context.Context, path string, content string) error {
	return os.WriteFile(f.config.ResolvePath(path), []byte(content), 0644)
}

// EnsureDirectory ensures a directory exists
func (f *FileWriterAdapter) EnsureDirectory(ctx context.Context, path string) error {
	return os.MkdirAll(f.config.ResolvePath(path), 0755)
}

// Ensure the adapter implements the interface
var _ usecase.FileWriter = (*FileWriterAdapter)(nil)
