package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		content := []byte("# Title\n")

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("classifies missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "absent.md"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want to wrap os.ErrNotExist", err)
		}
	})

	t.Run("classifies directory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.ReadFile(ctx, "anypath")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.md")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fsutil.Exists(path) {
		t.Error("Exists() = false for existing file")
	}
	if !fsutil.Exists(dir) {
		t.Error("Exists() = false for existing directory")
	}
	if fsutil.Exists(filepath.Join(dir, "absent.md")) {
		t.Error("Exists() = true for missing path")
	}
}
