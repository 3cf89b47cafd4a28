// Package tui is the interactive catalog browser: a project list on the
// left and the rendered Markdown section for the selected project on the
// right.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"showcase/internal/catalog"
	"showcase/internal/render"
	"showcase/internal/strutil"
)

const listPaneWidth = 34

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	previewPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(0).
				Foreground(lipgloss.Color("170"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// projectItem adapts a catalog project to the bubbles list.
type projectItem struct {
	project *catalog.Project
}

func (i projectItem) FilterValue() string { return i.project.Title }

// projectDelegate renders one list row: title plus dimmed categories.
type projectDelegate struct{}

func (d projectDelegate) Height() int                             { return 1 }
func (d projectDelegate) Spacing() int                            { return 0 }
func (d projectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(projectItem)
	if !ok {
		return
	}

	label := fmt.Sprintf("%s %s", pi.project.Title,
		categoryStyle.Render(strings.Join(pi.project.Categories, ", ")))
	label = strutil.Limit(label, listPaneWidth-4)

	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("> "+label))
		return
	}
	fmt.Fprint(w, itemStyle.Render(label))
}

// Model is the browser's bubbletea model.
type Model struct {
	sourcePath string
	renderer   *render.Renderer

	catalog  *catalog.Catalog
	list     list.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	width    int
	height   int
	showHelp bool
	status   string
}

// NewModel builds the browser for an already loaded catalog.
func NewModel(sourcePath string, c *catalog.Catalog, r *render.Renderer) Model {
	items := projectItems(c)

	l := list.New(items, projectDelegate{}, listPaneWidth, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	vp := viewport.New()

	m := Model{
		sourcePath: sourcePath,
		renderer:   r,
		catalog:    c,
		list:       l,
		viewport:   vp,
		help:       help.New(),
		keys:       Keys,
	}
	m.refreshPreview()
	return m
}

func projectItems(c *catalog.Catalog) []list.Item {
	items := make([]list.Item, 0, len(c.Projects))
	for i := range c.Projects {
		items = append(items, projectItem{project: &c.Projects[i]})
	}
	return items
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfPageUp()
			return m, nil

		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfPageDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.list.Index()
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.refreshPreview()
	}
	return m, cmd
}

// reload re-reads the source file. On failure the current catalog stays
// and the error lands in the status line.
func (m *Model) reload() {
	c, err := catalog.Load(m.sourcePath)
	if err != nil {
		m.status = err.Error()
		return
	}
	index := m.list.Index()
	m.catalog = c
	m.list.SetItems(projectItems(c))
	if index < len(c.Projects) {
		m.list.Select(index)
	}
	m.status = ""
	m.refreshPreview()
}

// refreshPreview renders the selected project's section into the viewport.
func (m *Model) refreshPreview() {
	item, ok := m.list.SelectedItem().(projectItem)
	if !ok {
		m.viewport.SetContent("No projects in catalog.")
		return
	}
	m.viewport.SetContent(m.renderer.RenderProject(item.project))
	m.viewport.GotoTop()
}

func (m *Model) resize() {
	contentHeight := m.height - 4
	if contentHeight < 3 {
		contentHeight = 3
	}

	m.list.SetWidth(listPaneWidth)
	m.list.SetHeight(contentHeight)

	previewWidth := m.width - listPaneWidth - 6
	if previewWidth < 20 {
		previewWidth = 20
	}
	m.viewport.SetWidth(previewWidth)
	m.viewport.SetHeight(contentHeight)
}

// View implements tea.Model
func (m Model) View() tea.View {
	return tea.NewView(m.ViewString())
}

// ViewString renders the full frame.
func (m Model) ViewString() string {
	title := m.catalog.Header.Title
	if title == "" {
		title = "Projects"
	}
	header := titleStyle.Render(fmt.Sprintf("%s (%d projects)", title, m.catalog.Len()))

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		listPaneStyle.Render(m.list.View()),
		previewPaneStyle.Render(m.viewport.View()),
	)

	var footer string
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	} else if m.showHelp {
		footer = m.help.FullHelpView(m.keys.FullHelp())
	} else {
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, panes, footer)
}

// Run loads the catalog and starts the browser.
func Run(ctx context.Context, sourcePath string, r *render.Renderer) error {
	c, err := catalog.Load(sourcePath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(sourcePath, c, r))
	_, err = p.Run()
	return err
}
