package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mw8/white-keyboard-layout/internal/layout"
	"github.com/mw8/white-keyboard-layout/internal/viz"
)

// renderCommand draws a layout as a PNG keyboard diagram.
var renderCommand = &cli.Command{
	Name:      "render",
	Aliases:   []string{"r"},
	Usage:     "Render a keyboard layout as a PNG diagram",
	ArgsUsage: "<layout>",
	Flags:     flagsSlice("out"),
	Before:    validateRenderArgs,
	Action:    renderAction,
}

func validateRenderArgs(ctx context.Context, c *cli.Command) (context.Context, error) {
	if c.Args().Len() != 1 {
		return ctx, fmt.Errorf("render: expected exactly 1 layout, got %d", c.Args().Len())
	}
	return ctx, nil
}

func renderAction(_ context.Context, c *cli.Command) error {
	l, err := layout.Load(c.Args().First())
	if err != nil {
		return fmt.Errorf("render: loading layout: %w", err)
	}

	out := c.String("out")
	if err := viz.Render(l, out); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}
