// Package main implements the autoloanc binary. It is the only
// public-facing entry point to autoloanc, since its Go packages are
// all internal.
package main

import "github.com/replit/autoloanc/internal/cli"

// Main entry point for the autoloanc binary.
func main() {
	cli.DoCLI()
}
