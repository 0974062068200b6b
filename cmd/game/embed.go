package main

import "embed"

// configFS holds the default config set shipped with the binary
//
//go:embed configs
var configFS embed.FS
