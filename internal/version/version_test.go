package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "v1.2.3"
	got := String()

	if !strings.HasPrefix(got, "v1.2.3 (") {
		t.Errorf("String() = %q, want prefix %q", got, "v1.2.3 (")
	}
	if !strings.Contains(got, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("String() = %q, want platform %s/%s", got, runtime.GOOS, runtime.GOARCH)
	}
}

func TestDefaultVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should never be empty")
	}
}
