package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "corpus.txt", "the cat, the dog!\nthe cat again")

	tokens, err := NewLoader(path, 0).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"the", "cat", "the", "dog", "the", "cat", "again"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Load = %v, want %v", tokens, want)
	}
}

// directory corpora must concatenate in sorted filename order so the
// token sequence is the same every run
func TestLoadDirectorySortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "second part")
	writeFile(t, dir, "a.txt", "first part")

	tokens, err := NewLoader(dir, 0).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"first", "part", "second", "part"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Load = %v, want %v", tokens, want)
	}
}

func TestLoadMissingPath(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.txt"), 0).Load()
	if err == nil {
		t.Fatal("Expected an error for a missing corpus path")
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	_, err := NewLoader(t.TempDir(), 0).Load()
	if err == nil {
		t.Fatal("Expected an error for a directory without .txt files")
	}
}

func TestLoadTokenCap(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "corpus.txt", "one two three four five")

	tokens, err := NewLoader(path, 3).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Load with cap = %v, want %v", tokens, want)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "corpus.txt", "")

	tokens, err := NewLoader(path, 0).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("Expected no tokens from an empty file, got %v", tokens)
	}
}
