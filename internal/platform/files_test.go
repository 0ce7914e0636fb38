package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}
	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}
	if base := filepath.Base(downloadsDir); base != "Downloads" && base != "Download" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.txt")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist") {
		t.Errorf("Expected 'file does not exist' error, got: %v", err)
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	if err := OpenFileInManager(""); err == nil {
		t.Fatal("Expected error for empty path")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"token.js", "token.js"},
		{"  ", "untitled"},
		{"a/b\\c:d", "a_b_c_d"},
		{"what?<x>|\"y\"*", "what__x___y__"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFileName(tt.in); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSaveTextFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "export")

	path, err := SaveTextFile(dir, "get:token.js", "console.log(1)")
	if err != nil {
		t.Fatalf("SaveTextFile failed: %v", err)
	}
	if filepath.Base(path) != "get_token.js" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(b) != "console.log(1)" {
		t.Errorf("content = %q", b)
	}
}

func TestSaveTextFile_EmptyDir(t *testing.T) {
	if _, err := SaveTextFile("", "x.txt", "x"); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
