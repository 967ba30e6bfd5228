// Package version provides version information for the colframe library.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const (
	unknownValue     = "unknown"
	commitHashLength = 7
)

// Build-time variables set by ldflags
var (
	Version   = "dev"
	GitCommit = unknownValue
	GoVersion = runtime.Version()
)

// BuildInfo contains build information attached to log records and diagnostics
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Module    string `json:"module"`
	Dirty     bool   `json:"dirty"`
}

// Info returns build information, falling back to the module version recorded
// by the toolchain when no version was injected at link time.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
		Dirty:     strings.HasSuffix(GitCommit, "-dirty"),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.Module = buildInfo.Main.Path
		if info.Version == "dev" && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
			info.Version = buildInfo.Main.Version
		}
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == unknownValue {
					info.GitCommit = setting.Value
				}
			case "vcs.modified":
				info.Dirty = info.Dirty || setting.Value == "true"
			}
		}
	}

	return info
}

// ShortCommit returns the abbreviated commit hash
func (b BuildInfo) ShortCommit() string {
	if len(b.GitCommit) > commitHashLength && b.GitCommit != unknownValue {
		return b.GitCommit[:commitHashLength]
	}
	return b.GitCommit
}

// String returns a one-line version string
func (b BuildInfo) String() string {
	var sb strings.Builder
	sb.WriteString("colframe ")
	sb.WriteString(b.Version)
	if b.GitCommit != unknownValue {
		sb.WriteString(fmt.Sprintf(" (%s", b.ShortCommit()))
		if b.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	sb.WriteString(" ")
	sb.WriteString(b.GoVersion)
	return sb.String()
}
