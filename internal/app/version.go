package app

import "runtime"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/large-farva/gnss/internal/app.Version=v1.2.3"
var (
	Version   = "dev"
	GoVersion = runtime.Version()
	BuiltAt   = "unknown"
)
