package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vizgraph/vizgraph/pkg/io"
	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// statsCommand creates the stats command for summarizing a document.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Show collection counts for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), args[0])
		},
	}
}

func runStats(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	g, err := io.ImportJSON(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s", path)

	fmt.Println(StyleTitle.Render("Document: " + path))
	printNewline()
	fmt.Println(collectionTable(g).Render())
	printNewline()
	printKeyValue("entities", strconv.Itoa(g.EntityCount()))
	printNextStep("Validate this document", "vizgraph validate "+path)
	return nil
}

// collectionTable builds a two-column table of collection sizes.
func collectionTable(g *vgraph.VisualGraph) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{
		{"texts", strconv.Itoa(len(g.Texts))},
		{"layers", strconv.Itoa(len(g.Layers))},
		{"aspects", strconv.Itoa(len(g.Aspects))},
		{"blendings", strconv.Itoa(len(g.Blendings))},
		{"colors", strconv.Itoa(len(g.Colors))},
		{"featureDefs", strconv.Itoa(len(g.FeatureDefs))},
		{"stylists", strconv.Itoa(len(g.Stylists))},
		{"styles", strconv.Itoa(len(g.Styles))},
		{"elements", strconv.Itoa(len(g.Elements))},
		{"relationships", strconv.Itoa(len(g.Relationships))},
		{"views", strconv.Itoa(len(g.Views))},
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Collection", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleHighlight
			}
			return StyleValue
		})
}
