// Package main is the entry point for the golfstats CLI, which imports
// recorded golf rounds and shots and reports shot analytics.
package main

import "github.com/pable/golfstats/cmd"

func main() {
	cmd.Execute()
}
