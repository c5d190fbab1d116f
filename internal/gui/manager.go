package gui

import (
	"errors"

	"car-catalog/internal/browser"
	"car-catalog/internal/catalog"
	"car-catalog/internal/controllers"
	"car-catalog/internal/gui/components"
	"car-catalog/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const listSplitOffset = 0.4

// Manager binds the Fyne widgets to the catalog controller. All methods run on
// the Fyne event goroutine.
type Manager struct {
	window     fyne.Window
	controller *controllers.CatalogController
	launcher   browser.Launcher
	logger     logger.Logger
	isShutdown bool

	carList     *components.CarList
	detailPanel *components.DetailPanel
	toolbar     *components.Toolbar

	reloadHandler func()
}

func NewManager(window fyne.Window, controller *controllers.CatalogController, launcher browser.Launcher, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	manager := &Manager{
		window:      window,
		controller:  controller,
		launcher:    launcher,
		logger:      log,
		carList:     components.NewCarList(),
		detailPanel: components.NewDetailPanel(controllers.DefaultPrompt),
		toolbar:     components.NewToolbar(),
	}

	manager.carList.SetSelectionHandler(manager.handleSelection)
	manager.toolbar.SetSortChangeHandler(manager.handleSortChange)
	manager.toolbar.SetProducerHandler(manager.handleProducer)
	manager.detailPanel.SetSearchHandler(manager.handleShowOnWeb)

	controller.OnChange(manager.render)
	manager.render(controller.Snapshot())

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"cars": controller.Len(),
	})

	return manager
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	listColumn := container.NewBorder(m.toolbar.SortSelect, nil, nil, nil, m.carList.List)

	split := container.NewHSplit(listColumn, m.detailPanel.GetContainer())
	split.Offset = listSplitOffset

	return container.NewBorder(nil, nil, nil, m.toolbar.ProducerColumn(), split)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetReloadHandler(handler func()) {
	m.reloadHandler = handler
}

func (m *Manager) SetupMenus(quit func()) {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload Catalog", func() {
			if m.reloadHandler != nil {
				m.reloadHandler()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", quit),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Producer Website", m.handleProducer),
	)

	m.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, m.window)
}

func (m *Manager) render(s controllers.Snapshot) {
	if m.isShutdown {
		return
	}

	m.carList.SetLabels(s.Labels)
	if !s.HasSelection {
		m.carList.ClearSelection()
	}
	m.toolbar.ShowOrder(s.Order)
	m.detailPanel.SetDetail(s.Detail)
	m.detailPanel.SetSearchEnabled(s.SearchEnabled)
}

func (m *Manager) handleSelection(index int) {
	if _, ok := m.controller.Select(index); !ok {
		m.logger.Debug("GUIManager", "selection out of range", map[string]interface{}{
			"index": index,
		})
	}
}

func (m *Manager) handleSortChange(order catalog.SortOrder) {
	m.logger.Debug("GUIManager", "sort order change requested", map[string]interface{}{
		"order": order.String(),
	})
	m.controller.ApplySort(order)
}

func (m *Manager) handleShowOnWeb() {
	url, err := m.controller.SearchURL()
	if errors.Is(err, controllers.ErrNoSelection) {
		return
	}
	m.open("Show on Web", url)
}

func (m *Manager) handleProducer() {
	m.open("Producer", m.controller.ProducerURL())
}

func (m *Manager) open(title, url string) {
	if err := m.launcher.Open(url); err != nil {
		m.ShowError(title, err)
	}
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
