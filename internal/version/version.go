// Package version reports the dangler build version. Release builds inject
// the values below via -ldflags; for everything else (go install, local
// builds) the module build info recorded by the toolchain is used so the
// binary still reports something more useful than the placeholders.
package version

import (
	"runtime/debug"
	"strings"
)

// Injected via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(bi)
	}
}

// fillFromBuildInfo fills in each variable that still holds its placeholder.
// Values set through ldflags are never overwritten.
func fillFromBuildInfo(bi *debug.BuildInfo) {
	if Version == "dev" {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			Version = strings.TrimPrefix(v, "v")
		}
	}

	revision, vcsTime := vcsSettings(bi)
	if Commit == "none" && revision != "" {
		Commit = shortCommit(revision)
	}
	if Date == "unknown" && vcsTime != "" {
		Date = vcsTime
	}
}

// vcsSettings extracts the revision and commit time the toolchain embedded.
func vcsSettings(bi *debug.BuildInfo) (revision, vcsTime string) {
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}
	return revision, vcsTime
}

// shortCommit abbreviates a full revision hash to the usual seven characters.
func shortCommit(revision string) string {
	if len(revision) > 7 {
		return revision[:7]
	}
	return revision
}
