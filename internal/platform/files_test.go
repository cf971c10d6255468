package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isTestAudio(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".flac", ".ogg", ".wav":
		return true
	}
	return false
}

func TestFindAudioFiles(t *testing.T) {
	tempDir := t.TempDir()

	// Build a small directory tree with audio and non-audio files
	files := []string{
		"a.mp3",
		"b.txt",
		"sub/c.flac",
		"sub/deep/d.OGG",
		"sub/deep/notes.md",
		".hidden/e.mp3",
	}
	for _, f := range files {
		path := filepath.Join(tempDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}

	found, err := FindAudioFiles(tempDir, isTestAudio)
	if err != nil {
		t.Fatalf("FindAudioFiles failed: %v", err)
	}

	want := []string{
		filepath.Join(tempDir, "a.mp3"),
		filepath.Join(tempDir, "sub", "c.flac"),
		filepath.Join(tempDir, "sub", "deep", "d.OGG"),
	}
	if len(found) != len(want) {
		t.Fatalf("Expected %d files, got %d: %v", len(want), len(found), found)
	}
	for i, path := range want {
		if found[i] != path {
			t.Errorf("Position %d: expected %s, got %s", i, path, found[i])
		}
	}
}

func TestFindAudioFiles_NotADirectory(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "track.mp3")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if _, err := FindAudioFiles(file, isTestAudio); err == nil {
		t.Error("Expected error for a non-directory path, got nil")
	}
}

func TestFindAudioFiles_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	if _, err := FindAudioFiles(missing, isTestAudio); err == nil {
		t.Error("Expected error for a missing directory, got nil")
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeMusicDir(t *testing.T) {
	musicDir, err := GetHomeMusicDir()
	if err != nil {
		t.Fatalf("Failed to get music directory: %v", err)
	}

	if musicDir == "" {
		t.Fatal("Music directory is empty")
	}

	// Should end with "Music"
	if filepath.Base(musicDir) != "Music" {
		t.Errorf("Expected directory to end with 'Music', got: %s", musicDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.mp3")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	// Check that error contains the expected message
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileInManager_WithExistingFile(t *testing.T) {
	// Create a temporary file
	tempFile, err := os.CreateTemp("", "test_track_*.mp3")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tempFile.Name())
	tempFile.Close()

	// This test just verifies the function doesn't panic and handles the file path
	// We can't really test the actual opening without user interaction
	err = OpenFileInManager(tempFile.Name())

	// On CI or headless systems, this might fail, which is expected
	// We're mainly testing that the function handles the path correctly
	if err != nil {
		t.Logf("OpenFileInManager failed (expected on headless systems): %v", err)
	}
}
