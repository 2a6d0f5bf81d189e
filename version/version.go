package version

import (
	goversion "github.com/caarlos0/go-version"
)

// Build information. These variables are set at build time via ldflags.
var (
	// Version is the semantic version (if tagged)
	Version = "dev"

	// CommitHash is the git commit hash when the binary was built
	CommitHash = ""

	// TreeState is "clean" or "dirty"
	TreeState = ""

	// BuildTime is when the binary was built
	BuildTime = ""

	// BuiltBy names the build system
	BuiltBy = ""
)

const (
	appName        = "javagen"
	appDescription = "Render Java source files from declarative unit descriptions"
	appURL         = "https://github.com/teranos/javagen"
)

// Get returns the current version information. Values not set through
// ldflags fall back to what the Go build info records.
func Get() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(appName, appDescription, appURL),
		func(i *goversion.Info) {
			if Version != "" {
				i.GitVersion = Version
			}
			if CommitHash != "" {
				i.GitCommit = CommitHash
			}
			if TreeState != "" {
				i.GitTreeState = TreeState
			}
			if BuildTime != "" {
				i.BuildDate = BuildTime
			}
			if BuiltBy != "" {
				i.BuiltBy = BuiltBy
			}
		},
	)
}

// Short returns a short version string with just the commit hash
func Short() string {
	commit := Get().GitCommit
	if len(commit) >= 7 {
		return commit[:7]
	}
	return commit
}
