package version

import "fmt"

// Set with `-ldflags "-X github.com/votrify/votrify/lib/version.GitCommit=..."`.
var (
	Version   string = "0.1.0" // SemVer, updated by hand at each release
	GitCommit string
	BuildDate string
)

func ToDetailVersion() string {
	commit := GitCommit
	if len(commit) < 1 {
		commit = "unknown"
	}

	return fmt.Sprintf("votrify version=%s git=%s build=%s", Version, commit, BuildDate)
}
