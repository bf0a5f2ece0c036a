package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates new file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		content := []byte("# Title\n")

		if err := fsutil.WriteAtomic(context.Background(), path, content, 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("zero mode falls back to default", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", stat.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := fsutil.WriteAtomic(ctx, path, []byte("content"), 0644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file should not have been created")
		}
	})

	t.Run("cleans up temp file on error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "nonexistent", "doc.md")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("content"), 0644); err == nil {
			t.Fatal("expected error for invalid path")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		for _, entry := range entries {
			if strings.Contains(entry.Name(), ".tmp") {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	t.Run("writes missing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")

		changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("# Title\n"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !changed {
			t.Error("changed = false, want true for missing file")
		}
	})

	t.Run("skips identical content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		content := []byte("# Title\n")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		before, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}

		changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, content, 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if changed {
			t.Error("changed = true, want false for identical content")
		}

		after, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if !after.ModTime().Equal(before.ModTime()) {
			t.Error("file was rewritten despite identical content")
		}
	})

	t.Run("writes differing content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("new"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !changed {
			t.Error("changed = false, want true for differing content")
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("content"), 0644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
