package version

// Version is overridden at build time with
// -ldflags "-X naivebaseline/internal/version.Version=..."
var Version = "dev"
