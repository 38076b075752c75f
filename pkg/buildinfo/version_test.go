package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "v1.2.3", "abc123"
	got := Get()
	if got.Version != "v1.2.3" || got.Commit != "abc123" || got.Date != Date {
		t.Errorf("Get() = %+v", got)
	}
	if !strings.Contains(got.String(), "version: v1.2.3") {
		t.Errorf("String() = %q", got.String())
	}
	if !strings.Contains(Template(), "commit: abc123") {
		t.Errorf("Template() = %q", Template())
	}
}
