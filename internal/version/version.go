package version

// Populated via -ldflags at build time
var (
	AppName   = "challengebot"
	Version   = "dev"
	BuildDate = "unknown"
)
