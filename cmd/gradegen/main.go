// cmd/gradegen/main.go
package main

import (
	cmd "gradegen/internal/commands"
)

// Build-time variables injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the gradegen CLI application by delegating to the
// cobra root command defined in the commands package.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
