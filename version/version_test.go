package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestRevision(t *testing.T) {
	for _, c := range []struct {
		settings []debug.BuildSetting
		want     string
	}{
		{nil, ""},
		{[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}, "0123456"},
		{[]debug.BuildSetting{{Key: "vcs.modified", Value: "true"}, {Key: "vcs.revision", Value: "abc"}}, "abc-dirty"},
		{[]debug.BuildSetting{{Key: "vcs.modified", Value: "true"}}, ""},
	} {
		if got := revision(c.settings); got != c.want {
			t.Fatalf("revision(%v) = %q, want %q", c.settings, got, c.want)
		}
	}
	if d := Describe(); !strings.HasPrefix(d, "motif "+VersionOrHash) {
		t.Fatalf("got description %q", d)
	}
}
