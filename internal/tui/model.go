// Package tui is a terminal front end for the car catalog.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"car-catalog/internal/browser"
	"car-catalog/internal/catalog"
	"car-catalog/internal/controllers"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	minListWidth  = 24
)

// ReloadMsg asks the model to reload the catalog, e.g. from a file watcher
type ReloadMsg struct{}

type launchResultMsg struct {
	url string
	err error
}

type carItem string

func (i carItem) FilterValue() string { return string(i) }
func (i carItem) Title() string       { return string(i) }
func (i carItem) Description() string { return "" }

// Model is the root bubbletea model. The controller is only touched from Update.
type Model struct {
	controller *controllers.CatalogController
	launcher   browser.Launcher
	reload     func() []catalog.Car

	list   list.Model
	status string
	failed bool

	width  int
	height int
}

// New builds the model around an already loaded controller. reload may be nil.
func New(controller *controllers.CatalogController, launcher browser.Launcher, reload func() []catalog.Car) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, minListWidth, defaultHeight)
	l.Title = "Cars"
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	m := Model{
		controller: controller,
		launcher:   launcher,
		reload:     reload,
		list:       l,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.syncItems()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(m.listWidth(), max(msg.Height-4, 3))
		return m, nil

	case ReloadMsg:
		m.reloadCatalog()
		return m, nil

	case launchResultMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("could not open %s: %v", msg.url, msg.err), true)
		} else {
			m.setStatus("opened "+msg.url, false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "s":
		m.applySort(nextOrder(m.controller.Order()))
		return m, nil

	case "1", "2", "3", "4":
		orders := catalog.SelectableOrders()
		m.applySort(orders[int(msg.Runes[0]-'1')])
		return m, nil

	case "enter", " ":
		m.controller.Select(m.list.Index())
		return m, nil

	case "w":
		url, err := m.controller.SearchURL()
		if err != nil {
			m.setStatus("select a car first", true)
			return m, nil
		}
		return m, m.open(url)

	case "p":
		return m, m.open(m.controller.ProducerURL())

	case "r":
		m.reloadCatalog()
		return m, nil
	}

	before := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if after := m.list.Index(); after != before && len(m.list.Items()) > 0 {
		m.controller.Select(after)
	}
	return m, cmd
}

func (m Model) View() string {
	header := headerStyle.Render("Sort: " + m.controller.Order().Label())

	listPane := paneBorder.Width(m.listWidth()).Render(m.list.View())
	detailPane := paneBorder.Width(m.detailWidth()).Render(m.detailView())

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	footer := hintStyle.Render("↑/↓ select • s/1-4 sort • w web • p producer • r reload • q quit")
	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = statusErrStyle
		}
		footer = style.Render(m.status) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) detailView() string {
	var sb strings.Builder

	if _, ok := m.controller.Selection(); ok {
		sb.WriteString(detailStyle.Render(m.controller.Detail()))
	} else {
		sb.WriteString(promptStyle.Render(m.controller.Detail()))
	}
	sb.WriteString("\n\n")

	if m.controller.SearchEnabled() {
		sb.WriteString(actionStyle.Render("[w] Show on Web"))
	} else {
		sb.WriteString(disabledStyle.Render("[w] Show on Web"))
	}
	sb.WriteString("   ")
	sb.WriteString(actionStyle.Render("[p] Producer"))

	return sb.String()
}

func (m *Model) applySort(order catalog.SortOrder) {
	m.controller.ApplySort(order)
	m.syncItems()
	m.setStatus("sorted: "+order.Label(), false)
}

func (m *Model) reloadCatalog() {
	if m.reload == nil {
		return
	}
	m.controller.SetCatalog(m.reload())
	m.syncItems()
	m.setStatus(fmt.Sprintf("reloaded %d cars", m.controller.Len()), false)
}

// syncItems rebuilds the rows from the controller and moves the cursor to the top
func (m *Model) syncItems() {
	labels := m.controller.Labels()
	items := make([]list.Item, len(labels))
	for i, label := range labels {
		items[i] = carItem(label)
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
}

func (m Model) open(url string) tea.Cmd {
	launcher := m.launcher
	return func() tea.Msg {
		return launchResultMsg{url: url, err: launcher.Open(url)}
	}
}

func (m *Model) setStatus(status string, failed bool) {
	m.status = status
	m.failed = failed
}

func (m Model) listWidth() int {
	return max(m.width*2/5, minListWidth)
}

func (m Model) detailWidth() int {
	return max(m.width-m.listWidth()-4, minListWidth)
}

func nextOrder(current catalog.SortOrder) catalog.SortOrder {
	orders := catalog.SelectableOrders()
	for i, order := range orders {
		if order == current {
			return orders[(i+1)%len(orders)]
		}
	}
	return orders[0]
}
