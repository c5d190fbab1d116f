package gui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-catalog/internal/catalog"
	"car-catalog/internal/controllers"
)

type fakeLauncher struct {
	opened []string
	err    error
}

func (f *fakeLauncher) Open(rawURL string) error {
	f.opened = append(f.opened, rawURL)
	return f.err
}

func newTestManager(t *testing.T) (*Manager, *controllers.CatalogController, *fakeLauncher) {
	t.Helper()
	test.NewApp()

	controller := controllers.NewCatalogController(controllers.DefaultLinks(), nil)
	controller.SetCatalog([]catalog.Car{
		{Brand: "Fiat", Model: "Egea", Year: 2020, Description: "x"},
		{Brand: "BMW", Model: "320i", Year: 2022, Description: "y"},
	})

	launcher := &fakeLauncher{}
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	manager := NewManager(window, controller, launcher, nil)
	window.SetContent(manager.GetMainContainer())
	window.Resize(fyne.NewSize(750, 400))

	return manager, controller, launcher
}

func TestManager_InitialState(t *testing.T) {
	m, _, _ := newTestManager(t)

	assert.Equal(t, []string{"Fiat Egea", "BMW 320i"}, m.carList.Labels())
	assert.Equal(t, controllers.DefaultPrompt, m.detailPanel.DetailLabel.Text)
	assert.True(t, m.detailPanel.SearchButton.Disabled())
	assert.Empty(t, m.toolbar.SortSelect.Selected)
	assert.Equal(t, -1, m.carList.Selected())
}

func TestManager_SelectingRowShowsDetail(t *testing.T) {
	m, controller, launcher := newTestManager(t)

	m.carList.List.Select(1)

	index, ok := controller.Selection()
	require.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, "Brand: BMW\nModel: 320i\nYear: 2022\nDescription: y", m.detailPanel.DetailLabel.Text)
	assert.False(t, m.detailPanel.SearchButton.Disabled())

	test.Tap(m.detailPanel.SearchButton)
	assert.Equal(t, []string{"https://www.google.com/search?q=BMW%20320i"}, launcher.opened)
}

func TestManager_SortChangeClearsSelection(t *testing.T) {
	m, controller, _ := newTestManager(t)
	m.carList.List.Select(0)

	m.toolbar.SortSelect.SetSelected(catalog.SortBrandAsc.Label())

	assert.Equal(t, catalog.SortBrandAsc, controller.Order())
	assert.Equal(t, []string{"BMW 320i", "Fiat Egea"}, m.carList.Labels())
	assert.Equal(t, -1, m.carList.Selected())
	assert.Equal(t, controllers.DefaultPrompt, m.detailPanel.DetailLabel.Text)
	assert.True(t, m.detailPanel.SearchButton.Disabled())
}

func TestManager_SortWithUnchangedLabelsStillClearsSelection(t *testing.T) {
	m, controller, _ := newTestManager(t)
	m.toolbar.SortSelect.SetSelected(catalog.SortBrandAsc.Label())
	m.carList.List.Select(0)
	require.True(t, controller.SearchEnabled())

	m.toolbar.SortSelect.SetSelected(catalog.SortNewestFirst.Label())

	assert.Equal(t, []string{"BMW 320i", "Fiat Egea"}, m.carList.Labels())
	assert.Equal(t, -1, m.carList.Selected())
	assert.True(t, m.detailPanel.SearchButton.Disabled())
}

func TestManager_DisabledSearchDoesNotLaunch(t *testing.T) {
	m, _, launcher := newTestManager(t)

	test.Tap(m.detailPanel.SearchButton)
	m.handleShowOnWeb()

	assert.Empty(t, launcher.opened)
}

func TestManager_ProducerAlwaysEnabled(t *testing.T) {
	m, _, launcher := newTestManager(t)

	test.Tap(m.toolbar.ProducerButton)
	m.carList.List.Select(0)
	test.Tap(m.toolbar.ProducerButton)

	assert.Equal(t, []string{"https://omotech.xyz", "https://omotech.xyz"}, launcher.opened)
}

func TestManager_LaunchFailureShowsError(t *testing.T) {
	m, controller, launcher := newTestManager(t)
	launcher.err = errors.New("no browser available")

	test.Tap(m.toolbar.ProducerButton)

	assert.NotNil(t, m.window.Canvas().Overlays().Top())
	_, selected := controller.Selection()
	assert.False(t, selected)
}

func TestManager_ReloadRefreshesList(t *testing.T) {
	m, controller, _ := newTestManager(t)
	m.toolbar.SortSelect.SetSelected(catalog.SortOldestFirst.Label())
	m.carList.List.Select(1)

	controller.SetCatalog([]catalog.Car{{Brand: "Audi", Model: "A3", Year: 2019}})

	assert.Equal(t, []string{"Audi A3"}, m.carList.Labels())
	assert.Equal(t, -1, m.carList.Selected())
	assert.Equal(t, catalog.SortOldestFirst.Label(), m.toolbar.SortSelect.Selected)
	assert.True(t, m.detailPanel.SearchButton.Disabled())
}

func TestManager_InitialOrderShownInSelector(t *testing.T) {
	test.NewApp()
	controller := controllers.NewCatalogController(controllers.DefaultLinks(), nil)
	controller.ApplySort(catalog.SortBrandDesc)

	window := test.NewWindow(nil)
	defer window.Close()
	m := NewManager(window, controller, &fakeLauncher{}, nil)

	assert.Equal(t, catalog.SortBrandDesc.Label(), m.toolbar.SortSelect.Selected)
}

func TestManager_ShutdownStopsRendering(t *testing.T) {
	m, controller, _ := newTestManager(t)
	m.Shutdown()
	m.Shutdown()

	controller.SetCatalog(nil)
	assert.Len(t, m.carList.Labels(), 2)
}

func TestTheme_DarkPalette(t *testing.T) {
	th := NewTheme()
	assert.Equal(t, windowColor, th.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, highlightColor, th.Color(theme.ColorNamePrimary, theme.VariantDark))
	assert.NotNil(t, th.Font(fyne.TextStyle{}))
	assert.Positive(t, th.Size(theme.SizeNameText))
}
