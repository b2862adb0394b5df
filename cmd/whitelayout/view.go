package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v3"

	"github.com/mw8/white-keyboard-layout/internal/layout"
)

// viewCommand loads one or more layout files and a corpus, and prints a
// table comparing their scores.
var viewCommand = &cli.Command{
	Name:      "view",
	Aliases:   []string{"v"},
	Usage:     "Score one or more keyboard layouts against a corpus",
	ArgsUsage: "<layout1> <layout2> ...",
	Flags:     flagsSlice("config", "corpus"),
	Before:    validateViewArgs,
	Action:    viewAction,
}

func validateViewArgs(ctx context.Context, c *cli.Command) (context.Context, error) {
	if c.Args().Len() < 1 {
		return ctx, fmt.Errorf("view: need at least 1 layout")
	}
	return ctx, nil
}

func viewAction(_ context.Context, c *cli.Command) error {
	cfg, err := loadConfigFromFlags(c)
	if err != nil {
		return err
	}
	obj, err := loadObjective(cfg, c.String("corpus"))
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = true
	tw.AppendHeader(table.Row{"Layout", "Score"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	for _, path := range c.Args().Slice() {
		l, err := layout.Load(path)
		if err != nil {
			return fmt.Errorf("view: loading %s: %w", path, err)
		}
		score := obj.Score(l)
		tw.AppendRow(table.Row{path, fmt.Sprintf("%.2f", score.Float64())})
	}

	fmt.Println(tw.Render())
	return nil
}
