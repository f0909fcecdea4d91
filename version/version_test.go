package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBranch, origBuildTime, origGoVersion :=
		Version, GitCommit, GitBranch, BuildTime, GoVersion
	return func() {
		Version = origVersion
		GitCommit = origCommit
		GitBranch = origBranch
		BuildTime = origBuildTime
		GoVersion = origGoVersion
	}
}

func TestGetVersionInfo_Defaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	GitBranch = ""
	BuildTime = ""
	GoVersion = ""

	info := GetVersionInfo()
	if info == nil {
		t.Fatal("expected non-nil Info")
	}
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
	if info.BuildDate.IsZero() {
		t.Error("BuildDate should not be zero")
	}
}

func TestGetVersionInfo_WithBuildTime(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	BuildTime = "2026-01-15T10:30:00Z"
	GitCommit = "abc1234"
	GitBranch = "main"
	GoVersion = "go1.26.0"

	info := GetVersionInfo()
	if info.Version != "1.0.0" {
		t.Errorf("expected '1.0.0', got %q", info.Version)
	}
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected 'abc1234', got %q", info.GitCommit)
	}
	if info.BuildDate.Year() != 2026 {
		t.Errorf("expected build year 2026, got %d", info.BuildDate.Year())
	}
}

func TestGetVersionInfo_DirtyVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0-dirty"

	info := GetVersionInfo()
	if info.IsRelease {
		t.Error("dirty version should not be a release")
	}
}

func TestGetShortVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "2.1.0"
	GitCommit = "deadbee"

	short := GetShortVersion()
	if !strings.HasPrefix(short, "2.1.0-deadbee") {
		t.Errorf("unexpected short version: %q", short)
	}
}
