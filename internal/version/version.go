package version

// Version is set at build time with -ldflags "-X github.com/yuzawa-san/wawona/internal/version.Version=...".
var Version = "dev"
