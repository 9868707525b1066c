// Package cmd implements the ember CLI commands.
//
// The command structure follows standard Go CLI patterns with a root
// command that dispatches to subcommands (demo, theme).
package cmd

import (
	"fmt"
	"os"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "ember",
	Short: "Ember - immediate-mode UI runtime tooling",
	Long: `Ember is an immediate-mode UI runtime: widgets are plain function
calls re-issued every frame, with input arbitration, container layout
and style resolution handled by the runtime.

Use "ember <command> --help" for more information about a command.`,
	Usage: "ember <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(c *Command) {
	commands[c.Name] = c
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]
	if len(args) == 0 {
		printHelp()
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp()
		return nil
	case "-v", "--version", "version":
		fmt.Printf("ember version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	c, ok := commands[args[0]]
	if !ok {
		printHelp()
		return fmt.Errorf("unknown command %q", args[0])
	}
	return c.Run(args[1:])
}

func printHelp() {
	fmt.Println(rootCmd.Short)
	fmt.Println()
	fmt.Println(rootCmd.Long)
	fmt.Println()
	fmt.Printf("Usage: %s\n\n", rootCmd.Usage)
	fmt.Println("Commands:")
	for _, c := range commands {
		fmt.Printf("  %-10s %s\n", c.Name, c.Short)
	}
}
