package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
)

// viewState identifies which pane of the browser is active.
type viewState int

const (
	// listView shows the guide list across all categories.
	listView viewState = iota

	// contentView shows the content of the selected guide.
	contentView
)

// guideItem is a list entry for a single guide.
type guideItem struct {
	category domain.Category
	name     string
}

// Title implements list.Item.
func (i guideItem) Title() string { return i.name }

// Description implements list.Item.
func (i guideItem) Description() string { return i.category.DisplayName() }

// FilterValue implements list.Item.
func (i guideItem) FilterValue() string {
	return i.name + " " + string(i.category)
}

// guidesLoadedMsg carries the guide listing fetched at startup.
type guidesLoadedMsg struct {
	items []list.Item
}

// contentLoadedMsg carries the content of a loaded guide.
type contentLoadedMsg struct {
	item    guideItem
	content string
}

// errMsg carries an error from a background load.
type errMsg struct {
	err error
}

// App is the interactive guide browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the browser styles.
	styles *Styles

	// list is the guide list across all categories.
	list list.Model

	// viewport renders the selected guide's content.
	viewport viewport.Model

	// state tracks which pane is active.
	state viewState

	// selected is the guide shown in the content pane.
	selected guideItem

	// width and height track the terminal size.
	width  int
	height int

	// err holds the most recent load error, if any.
	err error
}

// NewApp creates a new guide browser with the given ports.
func NewApp(ctx context.Context, ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ports: %w", err)
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "ChainGuide"
	l.SetShowStatusBar(false)

	return &App{
		ports:    ports,
		ctx:      ctx,
		styles:   DefaultStyles(),
		list:     l,
		viewport: viewport.New(0, 0),
		state:    listView,
	}, nil
}

// Init implements tea.Model and kicks off the initial guide load.
func (a *App) Init() tea.Cmd {
	return a.loadGuides()
}

// loadGuides fetches the guide listing for every category.
func (a *App) loadGuides() tea.Cmd {
	return func() tea.Msg {
		var items []list.Item
		for _, category := range domain.AllCategories() {
			names, err := a.ports.Library.ListGuides(a.ctx, category)
			if err != nil {
				return errMsg{err: err}
			}
			for _, name := range names {
				items = append(items, guideItem{category: category, name: name})
			}
		}
		return guidesLoadedMsg{items: items}
	}
}

// loadContent fetches the content of the given guide.
func (a *App) loadContent(item guideItem) tea.Cmd {
	return func() tea.Msg {
		guide, err := a.ports.Library.GetGuide(a.ctx, item.category, item.name)
		if err != nil {
			return errMsg{err: err}
		}
		return contentLoadedMsg{item: item, content: guide.Content}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height-2)
		a.viewport.Width = msg.Width - 4
		a.viewport.Height = msg.Height - 6
		return a, nil

	case guidesLoadedMsg:
		return a, a.list.SetItems(msg.items)

	case contentLoadedMsg:
		a.selected = msg.item
		a.viewport.SetContent(msg.content)
		a.viewport.GotoTop()
		a.state = contentView
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.forward(msg)
}

// handleKey routes key presses to the active pane.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "q":
		if a.state == contentView {
			a.state = listView
			return a, nil
		}
		if a.list.FilterState() != list.Filtering {
			return a, tea.Quit
		}

	case "esc":
		if a.state == contentView {
			a.state = listView
			return a, nil
		}

	case "enter":
		if a.state == listView && a.list.FilterState() != list.Filtering {
			if item, ok := a.list.SelectedItem().(guideItem); ok {
				return a, a.loadContent(item)
			}
			return a, nil
		}
	}

	return a.forward(msg)
}

// forward delegates a message to the active pane's model.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.state {
	case contentView:
		a.viewport, cmd = a.viewport.Update(msg)
	default:
		a.list, cmd = a.list.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.err != nil {
		return a.styles.Error.Render(fmt.Sprintf("Error: %v", a.err)) + "\n" +
			a.styles.Help.Render("q: quit")
	}

	if a.state == contentView {
		title := fmt.Sprintf("%s — %s", a.selected.category.DisplayName(), a.selected.name)
		return a.styles.Title.Render(title) + "\n" +
			a.styles.Content.Render(a.viewport.View()) + "\n" +
			a.styles.Help.Render("↑/↓: scroll • esc: back • q: quit")
	}

	return a.list.View()
}
