package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vizgraph/vizgraph/pkg/cache"
	"github.com/vizgraph/vizgraph/pkg/io"
	"github.com/vizgraph/vizgraph/pkg/render"
	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderCacheTTL bounds how long cached SVG renders are kept.
const renderCacheTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (empty derives from input)
	format   string // output format: "dot" or "svg"
	detailed bool   // include per-element metadata in node labels
	force    bool   // render even when validation reports errors
	noCache  bool   // bypass the render cache
}

// renderCommand creates the render command for generating structural previews.
// The preview groups elements by layer and draws relationships as labeled
// edges; it does not resolve styles or features.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document as a DOT or SVG structural preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", opts.format)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input path with new extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include element metadata in node labels")
	cmd.Flags().BoolVar(&opts.force, "force", false, "render even if validation fails")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	g, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded document: %d elements, %d relationships", len(g.Elements), len(g.Relationships))

	if findings := vgraph.Validate(g); vgraph.HasErrors(findings) && !opts.force {
		errorCount, warningCount := printFindings(findings)
		printFindingCounts(errorCount, warningCount)
		return fmt.Errorf("document has validation errors (use --force to render anyway)")
	}

	dot := render.ToDOT(g, render.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		data, err = renderSVGCached(ctx, dot, opts.noCache)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return err
	}

	printSuccess("Generated %s", outputPath)
	printFile(outputPath)
	return nil
}

// renderSVGCached runs Graphviz with a file-backed cache keyed by the DOT
// source, so re-rendering an unchanged document skips the slow path.
func renderSVGCached(ctx context.Context, dot string, noCache bool) ([]byte, error) {
	logger := loggerFromContext(ctx)
	c := newRenderCache(noCache)
	defer c.Close()

	key := cache.RenderKey(dot, formatSVG)
	if data, found, err := c.Get(ctx, key); err == nil && found {
		logger.Debug("Render cache hit")
		return data, nil
	}

	sp := newSpinnerWithContext(ctx, "Rendering SVG")
	sp.Start()
	data, err := render.SVG(dot)
	sp.Stop()
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, key, data, renderCacheTTL); err != nil {
		logger.Debugf("Render cache write failed: %v", err)
	}
	return data, nil
}
