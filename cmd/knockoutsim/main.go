// Command knockoutsim simulates a knockout tournament with a group
// phase of four-team groups and an eight-team elimination bracket.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
