package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/squaremap/pkg/render/styles"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

const tileInteractionCSS = `
    .tile { transition: opacity 0.15s ease; }
    svg:hover .tile { opacity: 0.75; }
    svg:hover .tile.highlight { opacity: 1; }
    .tile-text.highlight { font-weight: bold; }
    a { cursor: pointer; }`

const tileInteractionJS = `
    function highlight(idx) {
      document.querySelectorAll('.tile').forEach(t => t.classList.toggle('highlight', t.id === 'tile-' + idx));
      document.querySelectorAll('.tile-text').forEach(t => t.classList.toggle('highlight', t.dataset.tile === idx));
    }
    function clearHighlight() {
      document.querySelectorAll('.tile, .tile-text').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.tile').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.id.replace('tile-', '')));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	links       bool
	interactive bool
}

// WithStyle sets the visual style (default styles.Flat).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLinks wraps tiles whose item has a URL in an <a> element.
func WithLinks() SVGOption { return func(r *svgRenderer) { r.links = true } }

// WithoutInteraction omits the hover CSS and script, e.g. for PDF export.
func WithoutInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = false } }

// RenderSVG renders the layout as a standalone SVG document.
func RenderSVG(l treemap.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Flat{}, interactive: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Flat{}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	r.style.RenderDefs(&buf, l.Mode)
	fmt.Fprintf(&buf, `  <rect class="background" width="100%%" height="100%%" fill="%s"/>`+"\n", styles.Background(l.Mode))

	for _, t := range styles.FromLayout(l) {
		url := ""
		if r.links {
			url = t.URL
		}
		styles.WrapURL(&buf, url, func() {
			r.style.RenderTile(&buf, t)
			r.style.RenderText(&buf, t)
		})
	}

	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", tileInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", tileInteractionJS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
