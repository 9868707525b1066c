// Ember is the developer tool for the Ember UI runtime: it validates
// theme files and exercises a UI frame loop headlessly.
package main

import (
	"fmt"
	"os"

	"github.com/go-ember/ember/cmd/ember/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
