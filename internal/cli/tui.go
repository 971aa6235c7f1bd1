package cli

import (
	"fmt"
	"math/big"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pyrapath/pkg/pyramid"
	"github.com/matzehuels/pyrapath/pkg/render/ascii"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PathListModel - Interactive path browser
// =============================================================================

// PathListModel is the bubbletea model for browsing evaluated paths. The
// pyramid below the list highlights the path under the cursor.
type PathListModel struct {
	Graph  *pyramid.Graph
	Target *big.Int
	Paths  []pyramid.Result
	Cursor int
	Height int
	Offset int
}

// NewPathListModel creates a new path list model.
func NewPathListModel(g *pyramid.Graph, target *big.Int, paths []pyramid.Result) PathListModel {
	return PathListModel{
		Graph:  g,
		Target: target,
		Paths:  paths,
		Cursor: 0,
		Height: 10,
		Offset: 0,
	}
}

func (m PathListModel) Init() tea.Cmd {
	return nil
}

func (m PathListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Paths)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor = 0
			m.Offset = 0
		case "end", "G":
			m.Cursor = len(m.Paths) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, the table chrome and the pyramid.
		m.Height = msg.Height - m.Graph.Depth() - 10
		if m.Height < 3 {
			m.Height = 3
		}
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m PathListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Paths to " + m.Target.String()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Paths) {
		end = len(m.Paths)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Paths[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, p.Label, p.Trail(), p.Product.String()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Path", "Values", "Product").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Paths) {
				return lipgloss.NewStyle()
			}
			matches := m.Paths[actualIdx].Product.Cmp(m.Target) == 0
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			switch {
			case isCurrent && matches:
				return base.Foreground(colorGreen).Bold(true)
			case isCurrent:
				return base.Foreground(colorWhite).Bold(true)
			case matches:
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	if len(m.Paths) > 0 {
		b.WriteString(ascii.Render(m.Graph, ascii.Options{
			Path: m.Paths[m.Cursor].Label,
			Mark: markPathCell,
		}))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Paths))))

	return b.String()
}
