package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squaremap/pkg/pipeline"
)

// renderCommand creates the render command: items in, artifacts out.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		lf      layoutFlags
		rf      renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [items]",
		Short: "Lay out and render an items file",
		Long: `Lay out and render an items file in one step.

Equivalent to 'layout' followed by 'visualize'. Several formats can be
written at once:

  squaremap render keywords.json -f svg,png,txt

PDF output needs rsvg-convert on PATH; PNG is rendered natively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			lf.apply(cmd, &opts)
			rf.apply(cmd, &opts)
			opts.Refresh = refresh
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")
	lf.register(cmd)
	rf.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
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
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	result, err := runner.Execute(ctx, items, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	prog.done(fmt.Sprintf("render %s", strings.Join(opts.Formats, ",")),
		"items", result.Stats.ItemCount,
		"tiles", result.Stats.TileCount,
		"layout_cached", result.CacheInfo.LayoutHit)

	return c.writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}

// =============================================================================
// Artifact Output
// =============================================================================

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
}

// writeArtifacts writes each artifact next to the input (or under the
// output base path). A single format with output "-" goes to stdout.
func (c *CLI) writeArtifacts(p artifactWriteParams) error {
	if p.output == "-" {
		if len(p.formats) != 1 {
			return fmt.Errorf("output - needs exactly one format, got %d", len(p.formats))
		}
		_, err := c.out.Write(p.artifacts[p.formats[0]])
		return err
	}

	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		path := outputPath(p.output, p.input, format, len(p.formats))
		if err := os.WriteFile(path, p.artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %d file(s)", len(paths))
	for _, path := range paths {
		printFile(path)
	}
	printCacheStatus(p.cacheHit)
	return nil
}

// outputPath names the file for one format. With a single format an
// explicit output is used verbatim; otherwise it is a base path.
func outputPath(output, input, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath strips the extension from output, or derives a base from input
// when output is empty. "x.layout.json" becomes "x".
func basePath(output, input string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return strings.TrimSuffix(base, ".layout")
}
