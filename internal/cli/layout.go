package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squaremap/pkg/dataset"
	"github.com/matzehuels/squaremap/pkg/pipeline"
)

// layoutCommand creates the layout command for computing treemap layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output    string
		noCache   bool
		showTable bool
		lf        layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [items]",
		Short: "Compute a treemap layout from an items file",
		Long: `Compute a treemap layout from an items file.

The layout command reads items (JSON, TOML or YAML; see examples/) and
partitions the canvas into tiles. The output is a layout.json file that can
be rendered to SVG/PNG/PDF using the 'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			lf.apply(cmd, &opts)
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache, showTable)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&showTable, "table", false, "print a table of the placed tiles")
	lf.register(cmd)

	return cmd
}

// runLayout loads the items, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache, showTable bool) error {
	items, err := pipeline.LoadItems(input)
	if err != nil {
		return fmt.Errorf("load items %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	l, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, items, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("layout %d items", len(items)), "tiles", len(l.Tiles), "cached", cacheHit)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}

	if err := dataset.WriteLayoutFile(l.Export(), outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(items), l.Stats(), cacheHit)
	if showTable {
		printNewline()
		fmt.Fprintln(c.out, tileTable(l, 0))
	}
	printNewline()
	printNextStep("Render", appName+" visualize "+outputPath)

	return nil
}
