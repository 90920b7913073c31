package main

import "github.com/ppiankov/idioma/internal/cli"

var (
	// Version information (set via ldflags during build)
	version = "0.1.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.Execute(version, commit, date)
}
