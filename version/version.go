// Package version holds build-time metadata, populated via -ldflags at
// release build time. Unset at go build/go test, where the defaults
// below apply.
package version

var (
	GitRelease    = "dev"
	GitCommit     = "none"
	GitCommitDate = "unknown"
	GoInfo        = "unknown"
)
