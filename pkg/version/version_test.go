package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	v := Get()
	if v.Version == "" {
		t.Error("Version must not be empty")
	}
	if !strings.Contains(v.Platform, "/") {
		t.Errorf("Platform %q should be os/arch", v.Platform)
	}
}

func TestString(t *testing.T) {
	s := Get().String()
	if !strings.HasPrefix(s, "codedoc version ") {
		t.Errorf("unexpected version string: %q", s)
	}
}
