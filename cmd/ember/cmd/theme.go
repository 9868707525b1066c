package cmd

import (
	"flag"
	"fmt"

	"github.com/go-ember/ember/pkg/style"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Validate a theme YAML file",
		Usage: "ember theme <file.yaml>",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	fs := flag.NewFlagSet("theme", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: ember theme <file.yaml>")
	}
	path := fs.Arg(0)

	theme, err := style.LoadTheme(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	fmt.Printf("%s: ok (%d packs)\n", path, theme.Len())
	return nil
}
