package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

// Set with -ldflags at build time.
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Package   string `json:"package"`
}

// ShortCommit returns the first seven characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}

	return i.Commit
}

// String returns the version with commit and build date if known.
func (i Info) String() string {
	if i.Commit == unknown || i.Commit == "" {
		return i.Version
	}

	if i.Date == unknown || i.Date == "" {
		return fmt.Sprintf("%s (%s)", i.Version, i.ShortCommit())
	}

	return fmt.Sprintf("%s (%s, built %s)", i.Version, i.ShortCommit(), i.Date)
}

func buildSetting(key string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}

	for _, setting := range info.Settings {
		if setting.Key == key && setting.Value != "" {
			return setting.Value, true
		}
	}

	return "", false
}

// GetVersion returns the ldflags version, the module version or
// "development".
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}

	return "development"
}

// GetCommit returns the ldflags commit or the VCS revision.
func GetCommit() string {
	if Commit != unknown && Commit != "" {
		return Commit
	}

	if revision, ok := buildSetting("vcs.revision"); ok {
		return revision
	}

	return unknown
}

// GetBuildDate returns the ldflags date or the VCS commit time.
func GetBuildDate() string {
	if Date != unknown && Date != "" {
		return Date
	}

	if date, ok := buildSetting("vcs.time"); ok {
		return date
	}

	return unknown
}

// GetInfo returns complete version information.
func GetInfo() Info {
	return Info{
		Version:   GetVersion(),
		Commit:    GetCommit(),
		Date:      GetBuildDate(),
		GoVersion: runtime.Version(),
		Package:   "vshell",
	}
}

// GetFullVersion returns the version with commit and date.
func GetFullVersion() string {
	return GetInfo().String()
}

// PrintVersion prints version information to w.
func PrintVersion(w io.Writer, appName string) {
	info := GetInfo()
	fmt.Fprintf(w, "%s version %s\n", appName, info)
	fmt.Fprintf(w, "Package: %s\n", info.Package)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", info.Date)
	fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
}
