package stemmers

// Name is the library name.
const Name = "stemmers"

// Version information.
// These values can be overridden at build time using ldflags:
//
//	go build -ldflags "-X github.com/andreribeiro87/py-rust-stemmers-tuned.Version=1.0.0"
var (
	// Version is the semantic version of the library.
	Version = "0.1.0"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"
)

// FullVersion returns the version string with optional build info.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}
