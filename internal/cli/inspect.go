package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vizgraph/vizgraph/pkg/io"
	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing a document
// interactively.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse a document's collections interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}
			model := NewDocumentModel(args[0], g)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// =============================================================================
// DocumentModel - Interactive collection browser
// =============================================================================

// collection is one browsable entity collection with pre-rendered rows.
type collection struct {
	Name string
	Rows []string
}

// DocumentModel is the bubbletea model for browsing a document. The top
// level lists collections; enter drills into a collection's items and esc
// returns to the collection list.
type DocumentModel struct {
	Path        string
	Collections []collection
	Cursor      int
	ItemCursor  int
	Drilled     bool
	Height      int
	Offset      int
}

// NewDocumentModel creates a browser model over the document's collections.
func NewDocumentModel(path string, g *vgraph.VisualGraph) DocumentModel {
	return DocumentModel{
		Path:        path,
		Collections: buildCollections(g),
		Height:      15,
	}
}

func (m DocumentModel) Init() tea.Cmd {
	return nil
}

func (m DocumentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Drilled {
				m.Drilled = false
				m.ItemCursor = 0
				m.Offset = 0
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			m.moveUp()
		case "down", "j":
			m.moveDown()
		case "enter":
			if !m.Drilled && len(m.Collections[m.Cursor].Rows) > 0 {
				m.Drilled = true
				m.ItemCursor = 0
				m.Offset = 0
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m *DocumentModel) moveUp() {
	cursor := &m.Cursor
	if m.Drilled {
		cursor = &m.ItemCursor
	}
	if *cursor > 0 {
		*cursor--
		if *cursor < m.Offset {
			m.Offset = *cursor
		}
	}
}

func (m *DocumentModel) moveDown() {
	cursor, limit := &m.Cursor, len(m.Collections)
	if m.Drilled {
		cursor, limit = &m.ItemCursor, len(m.Collections[m.Cursor].Rows)
	}
	if *cursor < limit-1 {
		*cursor++
		if *cursor >= m.Offset+m.Height {
			m.Offset = *cursor - m.Height + 1
		}
	}
}

func (m DocumentModel) View() string {
	if m.Drilled {
		return m.itemView()
	}
	return m.collectionView()
}

func (m DocumentModel) collectionView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect " + m.Path))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for i, col := range m.Collections {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, col.Name, fmt.Sprintf("%d", len(col.Rows))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Collection", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				if len(m.Collections[row].Rows) > 0 {
					return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
				}
				return lipgloss.NewStyle().Foreground(colorDim).Bold(true)
			}
			if len(m.Collections[row].Rows) == 0 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Collections))))

	return b.String()
}

func (m DocumentModel) itemView() string {
	var b strings.Builder
	col := m.Collections[m.Cursor]

	b.WriteString(StyleTitle.Render(col.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  esc back  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(col.Rows) {
		end = len(col.Rows)
	}

	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.ItemCursor {
			cursor = "▸ "
		}
		line := cursor + col.Rows[i]
		if i == m.ItemCursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.ItemCursor+1, len(col.Rows))))

	return b.String()
}

// =============================================================================
// Row Rendering
// =============================================================================

// buildCollections flattens every entity collection into display rows.
func buildCollections(g *vgraph.VisualGraph) []collection {
	cols := []collection{
		{Name: "texts"}, {Name: "layers"}, {Name: "aspects"},
		{Name: "blendings"}, {Name: "colors"}, {Name: "featureDefs"},
		{Name: "stylists"}, {Name: "styles"}, {Name: "elements"},
		{Name: "relationships"}, {Name: "views"},
	}
	for _, t := range g.Texts {
		cols[0].Rows = append(cols[0].Rows, fmt.Sprintf("%-4d %s", t.ID, t.Text))
	}
	for _, l := range g.Layers {
		cols[1].Rows = append(cols[1].Rows, fmt.Sprintf("%-4d %s", l.ID, l.Name))
	}
	for _, a := range g.Aspects {
		cols[2].Rows = append(cols[2].Rows, fmt.Sprintf("%-4d %s", a.ID, a.Name))
	}
	for _, bl := range g.Blendings {
		cols[3].Rows = append(cols[3].Rows, fmt.Sprintf("%-4d %s", bl.ID, bl.Name))
	}
	for _, c := range g.Colors {
		cols[4].Rows = append(cols[4].Rows, fmt.Sprintf("%-4d %s (%s)", c.ID, c.Name, c.Value.Model))
	}
	for _, d := range g.FeatureDefs {
		cols[5].Rows = append(cols[5].Rows, fmt.Sprintf("%-4d %-20s items [%d, %d]  values [%g, %g]",
			d.ID, d.Name, d.MinItems, d.MaxItems, d.Minimum, d.Maximum))
	}
	for _, s := range g.Stylists {
		cols[6].Rows = append(cols[6].Rows, fmt.Sprintf("%-4d %s v%s (%d defs)", s.ID, s.Name, s.Version, len(s.FeatureDefIDs)))
	}
	for _, s := range g.Styles {
		cols[7].Rows = append(cols[7].Rows, fmt.Sprintf("%-4d stylist %d, %d features", s.ID, s.StylistID, len(s.Features)))
	}
	for _, e := range g.Elements {
		cols[8].Rows = append(cols[8].Rows, fmt.Sprintf("%-4d center (%g, %g)  %d anchors  layer %d",
			e.ID, e.Center.X, e.Center.Y, len(e.Anchors), e.LayerID))
	}
	for _, r := range g.Relationships {
		cols[9].Rows = append(cols[9].Rows, fmt.Sprintf("%-4d %d:%d %s %d:%d",
			r.ID, r.FromElementID, r.FromAnchor, iconArrow, r.ToElementID, r.ToAnchor))
	}
	for _, v := range g.Views {
		cols[10].Rows = append(cols[10].Rows, fmt.Sprintf("%-4d ratio %g", v.ID, v.PageRatio))
	}
	return cols
}
