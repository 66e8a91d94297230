package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squaremap/pkg/pipeline"
	"github.com/matzehuels/squaremap/pkg/render/styles"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// Flags only override the configuration when set explicitly, so each flag
// set keeps its own storage and copies values in apply.

// layoutFlags are the flags shared by commands that compute a layout.
type layoutFlags struct {
	width, height float64
	maxDisplay    int
	mode          string
	inset         float64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	d := pipeline.DefaultOptions()
	cmd.Flags().Float64Var(&f.width, "width", d.Width, "canvas width")
	cmd.Flags().Float64Var(&f.height, "height", d.Height, "canvas height")
	cmd.Flags().IntVarP(&f.maxDisplay, "max", "n", d.MaxDisplay, "maximum number of items shown (0: no cap)")
	cmd.Flags().StringVar(&f.mode, "mode", d.Mode, "colour mode: dark, light")
	cmd.Flags().Float64Var(&f.inset, "inset", d.Inset, "gutter removed from each tile side")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)
}

func (f *layoutFlags) apply(cmd *cobra.Command, o *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		o.Width = f.width
	}
	if flags.Changed("height") {
		o.Height = f.height
	}
	if flags.Changed("max") {
		o.MaxDisplay = f.maxDisplay
	}
	if flags.Changed("mode") {
		o.Mode = f.mode
	}
	if flags.Changed("inset") {
		o.Inset = f.inset
	}
}

// renderFlags are the flags shared by commands that write artifacts.
type renderFlags struct {
	formats string
	style   string
	scale   float64
	links   bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	d := pipeline.DefaultOptions()
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.ValidFormats, ", ")+" (comma-separated, default svg)")
	cmd.Flags().StringVar(&f.style, "style", d.Style, "visual style: "+strings.Join(styles.Names(), ", "))
	cmd.Flags().Float64Var(&f.scale, "scale", d.Scale, "PNG scale factor")
	cmd.Flags().BoolVar(&f.links, "links", false, "wrap tiles with URLs in links (SVG, PDF)")
	_ = cmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions(styles.Names(), cobra.ShellCompDirectiveNoFileComp))
}

func (f *renderFlags) apply(cmd *cobra.Command, o *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		o.Formats = parseFormats(f.formats)
	}
	if flags.Changed("style") {
		o.Style = f.style
	}
	if flags.Changed("scale") {
		o.Scale = f.scale
	}
	if flags.Changed("links") {
		o.Links = f.links
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if formats := pipeline.ParseFormats(s); len(formats) > 0 {
		return formats
	}
	return []string{pipeline.FormatSVG}
}

// completeModes offers the colour modes for --mode.
func completeModes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{string(treemap.ModeDark), string(treemap.ModeLight)}, cobra.ShellCompDirectiveNoFileComp
}
