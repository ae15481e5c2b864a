// Package tui provides a read-only terminal browser for the decision
// tree: walk questions with y/n, back up, and scroll the full tree
// listing alongside.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alighten/zoo/internal/tree"
)

// step records one answered question on the walk from the root.
type step struct {
	question string
	answer   string // "yes" or "no"
}

// Browser is the bubbletea model for the tree explorer.
type Browser struct {
	root    *tree.Node
	current *tree.Node
	path    []step

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	headerStyle lipgloss.Style
	nodeStyle   lipgloss.Style
	guessStyle  lipgloss.Style
	crumbStyle  lipgloss.Style
	footerStyle lipgloss.Style
}

// NewBrowser creates a browser positioned at the tree's root.
func NewBrowser(root *tree.Node) *Browser {
	return &Browser{
		root:    root,
		current: root,

		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("7")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")),

		nodeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		guessStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true),

		crumbStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),

		footerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case "y":
			b.descend(true)
		case "n":
			b.descend(false)
		case "esc", "backspace":
			b.ascend()
		case "r":
			b.current = b.root
			b.path = nil
		default:
			var cmd tea.Cmd
			b.viewport, cmd = b.viewport.Update(msg)
			return b, cmd
		}

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		// Header, walk panel and footer take the rest.
		vpHeight := msg.Height - 10
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !b.ready {
			b.viewport = viewport.New(msg.Width, vpHeight)
			b.ready = true
		} else {
			b.viewport.Width = msg.Width
			b.viewport.Height = vpHeight
		}
		b.viewport.SetContent(b.listing())

	default:
		var cmd tea.Cmd
		b.viewport, cmd = b.viewport.Update(msg)
		return b, cmd
	}

	return b, nil
}

// descend follows the yes or no edge of the current question.
func (b *Browser) descend(yes bool) {
	if b.current.Kind() != tree.KindQuestion {
		return
	}
	answer := "no"
	next := b.current.No()
	if yes {
		answer = "yes"
		next = b.current.Yes()
	}
	b.path = append(b.path, step{question: b.current.Question(), answer: answer})
	b.current = next
}

// ascend steps back to the parent question, if any.
func (b *Browser) ascend() {
	if b.current.IsRoot() {
		return
	}
	b.current = b.current.Parent()
	if len(b.path) > 0 {
		b.path = b.path[:len(b.path)-1]
	}
}

// View implements tea.Model.
func (b *Browser) View() string {
	if !b.ready {
		return "loading..."
	}

	var out strings.Builder

	header := fmt.Sprintf("Zoo tree browser (%d animals, depth %d)",
		tree.Leaves(b.root), tree.Depth(b.root))
	out.WriteString(b.headerStyle.Render(header))
	out.WriteString("\n\n")

	if len(b.path) > 0 {
		crumbs := make([]string, len(b.path))
		for i, s := range b.path {
			crumbs[i] = fmt.Sprintf("%s? %s", s.question, s.answer)
		}
		out.WriteString(b.crumbStyle.Render(strings.Join(crumbs, " > ")))
		out.WriteString("\n")
	}

	switch b.current.Kind() {
	case tree.KindQuestion:
		out.WriteString(b.nodeStyle.Render(b.current.Question() + "?"))
	case tree.KindGuess:
		out.WriteString(b.guessStyle.Render("Guess: " + b.current.Animal()))
	}
	out.WriteString("\n\n")

	out.WriteString(b.viewport.View())
	out.WriteString("\n")
	out.WriteString(b.footerStyle.Render(
		"[y/n] follow branch  [esc] back  [r] root  [up/down] scroll  [q] quit"))

	return out.String()
}

// listing renders the full tree dump shown in the scrollable pane.
func (b *Browser) listing() string {
	var sb strings.Builder
	tree.Dump(&sb, b.root)
	return sb.String()
}

// Run opens the browser over the given tree and blocks until quit.
func Run(root *tree.Node) error {
	p := tea.NewProgram(NewBrowser(root), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tree browser: %w", err)
	}
	return nil
}
