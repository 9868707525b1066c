package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/render"
	"github.com/go-ember/ember/pkg/style"
	"github.com/go-ember/ember/pkg/text"
	"github.com/go-ember/ember/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run a headless frame loop and print the recorded draws",
		Usage: "ember demo [--frames n] [--theme file.yaml]",
		Run:   runDemo,
	})
}

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	frames := fs.Int("frames", 3, "number of frames to run")
	themePath := fs.String("theme", "", "theme YAML file (default built-in)")
	verbose := fs.Bool("verbose", false, "print every recorded draw op")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var theme *style.Theme
	if *themePath != "" {
		var err error
		theme, err = style.LoadTheme(*themePath)
		if err != nil {
			return fmt.Errorf("loading theme: %w", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rec := &render.Recorder{}
	ctx := ui.New(ui.Options{
		Canvas:   rec,
		Measurer: text.Fixed{Advance: 8, Height: 16},
		Theme:    theme,
		Errors:   &errors.LogHandler{Logger: logger},
	})
	col := input.NewCollector()

	value := 4.0
	dark := false
	name := "ember"
	for i := 0; i < *frames; i++ {
		rec.Reset()
		ctx.BeginFrame(col.Snapshot(), 1.0/60)

		ctx.BeginColumn(ui.ContainerOptions{Gap: 8, At: geometry.Offset{X: 16, Y: 16}})
		ctx.Label("Ember demo", ui.LabelOptions{})
		ctx.BeginRow(ui.ContainerOptions{Gap: 8})
		ctx.Button("apply", "Apply", ui.ButtonOptions{})
		ctx.Button("reset", "Reset", ui.ButtonOptions{})
		ctx.EndRow()
		ctx.SliderH("volume", &value, 0, 10, 0.5, ui.SliderOptions{})
		ctx.Checkbox("dark", "Dark mode", &dark, ui.CheckboxOptions{})
		name, _ = ctx.TextInput("name", name, ui.TextInputOptions{})
		ctx.EndColumn()

		ctx.EndFrame()

		fmt.Printf("frame %d: %d ops\n", ctx.Frame(), len(rec.Ops()))
		if *verbose {
			for _, op := range rec.Ops() {
				fmt.Printf("  %v\n", op)
			}
		}
	}
	return nil
}
