// Package version reports the build of the motif binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set the version at build time with something like:
// go build -ldflags "-X github.com/vsariola/motif/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with a -dirty
// suffix for modified trees.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return revision(info.Settings)
}()

func revision(settings []debug.BuildSetting) string {
	var rev string
	modified := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value[:min(7, len(s.Value))]
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if rev != "" && modified {
		return rev + "-dirty"
	}
	return rev
}

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	if Hash != "" {
		return Hash
	}
	return "devel"
}()

// Describe returns the version with the toolchain and platform.
func Describe() string {
	return fmt.Sprintf("motif %s (%s %s/%s)", VersionOrHash, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
