// Package version reports build identification for the engine binary.
// Values are normally overridden at build time via -ldflags.
package version

// Build-time values, overridden via:
//  go build -ldflags "-X github.com/chessgo/engine/internal/version.version=1.2.3 \
//                      -X github.com/chessgo/engine/internal/version.commit=abcdef \
//                      -X github.com/chessgo/engine/internal/version.buildTime=2026-07-30"
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// Version returns the short semantic version of the engine.
func Version() string {
	return version
}

// Commit returns the VCS commit the binary was built from.
func Commit() string {
	return commit
}

// BuildTime returns the timestamp the binary was built at.
func BuildTime() string {
	return buildTime
}

// Full returns a single-line string suitable for UCI "id" responses.
func Full() string {
	return version + " (" + commit + ", " + buildTime + ")"
}
