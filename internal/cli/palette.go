package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vizgraph/vizgraph/pkg/palette"
	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// paletteCommand creates the palette command for loading style vocabularies.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette [file]",
		Short: "Load a TOML style palette and show its vocabulary",
		Long: `Palette loads a TOML file of feature definitions and stylists through a
fresh document builder and lists the declared vocabulary. Loading verifies
the file: duplicate names, inverted ranges, and unknown def references are
reported as errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd.Context(), args[0])
		},
	}
}

func runPalette(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	b := vgraph.NewGraphBuilder()
	p, err := palette.LoadFile(path, b)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded palette %s", path)

	fmt.Println(StyleTitle.Render("Palette: " + path))
	printNewline()

	printInfo("%d feature definition(s)", len(p.Defs))
	for _, name := range sortedKeys(p.Defs) {
		d := p.Defs[name]
		printDetail("%-20s items [%d, %d]  values [%g, %g]", d.Name, d.MinItems, d.MaxItems, d.Minimum, d.Maximum)
	}

	printNewline()
	printInfo("%d stylist(s)", len(p.Stylists))
	for _, name := range sortedKeys(p.Stylists) {
		s := p.Stylists[name]
		printDetail("%-20s v%s  defs: %s", s.Name, s.Version, defNames(p, s))
	}

	printSuccess("Palette is valid")
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// defNames resolves a stylist's def ids back to their palette names.
func defNames(p *palette.Palette, s vgraph.Stylist) string {
	names := make([]string, 0, len(s.FeatureDefIDs))
	for _, id := range s.FeatureDefIDs {
		for name, d := range p.Defs {
			if d.ID == id {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
