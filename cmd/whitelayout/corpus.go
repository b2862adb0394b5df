package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v3"

	"github.com/mw8/white-keyboard-layout/internal/corpus"
	"github.com/mw8/white-keyboard-layout/internal/layout"
)

// corpusCommand prints the top words of a corpus directory by frequency.
var corpusCommand = &cli.Command{
	Name:      "corpus",
	Usage:     "Display word frequencies for a corpus directory",
	ArgsUsage: "<dir>",
	Flags:     flagsSlice("rows"),
	Before:    validateCorpusArgs,
	Action:    corpusAction,
}

func validateCorpusArgs(ctx context.Context, c *cli.Command) (context.Context, error) {
	if c.Args().Len() != 1 {
		return ctx, fmt.Errorf("corpus: expected exactly 1 directory, got %d", c.Args().Len())
	}
	return ctx, nil
}

func corpusAction(_ context.Context, c *cli.Command) error {
	words, err := corpus.Load(c.Args().First())
	if err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	nrows := c.Int("rows")
	if nrows > len(words) {
		nrows = len(words)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetAutoIndex(true)
	tw.AppendHeader(table.Row{"Word", "Frequency"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	for _, w := range words[:nrows] {
		tw.AppendRow(table.Row{wordString(w.Chars), w.Freq})
	}

	fmt.Printf("Corpus: %s (%d words)\n\n", c.Args().First(), len(words))
	fmt.Println(tw.Render())
	return nil
}

func wordString(chars []byte) string {
	b := make([]byte, len(chars))
	for i, c := range chars {
		b[i] = layout.ASCII(c)
	}
	return string(b)
}
