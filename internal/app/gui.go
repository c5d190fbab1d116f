package app

import (
	"car-catalog/internal/browser"
	"car-catalog/internal/gui"
	"car-catalog/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

func (a *Application) runGUI() error {
	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: Version,
	})
	fyneApp.Settings().SetTheme(gui.NewTheme())

	window := fyneApp.NewWindow(a.config.Window.Title)
	window.Resize(fyne.NewSize(float32(a.config.Window.Width), float32(a.config.Window.Height)))
	window.CenterOnScreen()
	window.SetMaster()

	guiManager := gui.NewManager(window, a.controller, browser.NewAppLauncher(fyneApp, a.logger), a.logger)
	guiManager.SetReloadHandler(a.Reload)
	guiManager.SetupMenus(a.shutdown.Shutdown)

	// Reverse order: watcher stops first, the app quits last.
	a.shutdown.Register(shutdown.Func(func() { fyne.Do(fyneApp.Quit) }))
	a.shutdown.Register(shutdown.Func(func() { fyne.Do(guiManager.Shutdown) }))
	a.startWatcher(func() { fyne.Do(a.Reload) })
	a.shutdown.Listen()

	window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
	})

	window.SetContent(guiManager.GetMainContainer())
	window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}
