package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde only", "~", home},
		{"tilde with subpath", "~/logs", filepath.Join(home, "logs")},
		{"tilde with nested subpath", "~/a/b/c.log", filepath.Join(home, "a", "b", "c.log")},
		{"absolute path unchanged", "/var/log/app.log", "/var/log/app.log"},
		{"relative path unchanged", "relative/app.log", "relative/app.log"},
		{"empty string unchanged", "", ""},
		{"tilde in middle unchanged", "/path/~/test", "/path/~/test"},
		{"tilde without slash unchanged", "~user", "~user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandHome(tt.input); got != tt.expected {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("os.Getwd() error = %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/app.log", filepath.Join(home, "app.log")},
		{"app.log", filepath.Join(wd, "app.log")},
		{"./logs/../app.log", filepath.Join(wd, "app.log")},
		{"/var/log//app.log", "/var/log/app.log"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolve_Empty(t *testing.T) {
	if _, err := Resolve(""); err == nil {
		t.Error("Resolve(\"\") expected error")
	}
}
