package app

import (
	"fmt"

	"car-catalog/internal/catalog"
	"car-catalog/internal/config"
	"car-catalog/internal/controllers"
	"car-catalog/internal/logger"
	"car-catalog/internal/shutdown"
	"car-catalog/internal/watch"
)

const (
	AppName = "Car Catalog"
	AppID   = "xyz.omotech.carcatalog"
)

// Version is overridden at build time with -ldflags "-X car-catalog/internal/app.Version=..."
var Version = "1.0.0"

// Application owns the catalog state shared by both front ends
type Application struct {
	config     config.Config
	logger     logger.Logger
	loader     *catalog.Loader
	controller *controllers.CatalogController
	shutdown   *shutdown.Manager
}

// NewApplication loads the catalog and applies the configured initial order.
// cfg must already be validated.
func NewApplication(cfg config.Config, log logger.Logger) *Application {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	controller := controllers.NewCatalogController(cfg.ControllerLinks(), log)
	controller.ApplySort(cfg.SortOrder())

	a := &Application{
		config:     cfg,
		logger:     log,
		loader:     catalog.NewLoader(log),
		controller: controller,
		shutdown:   shutdown.NewManager(log),
	}
	controller.SetCatalog(a.LoadCatalog())

	log.Info("Application", "catalog loaded", map[string]interface{}{
		"version": Version,
		"file":    cfg.CatalogFile,
		"cars":    controller.Len(),
		"order":   controller.Order().String(),
	})

	return a
}

func (a *Application) Controller() *controllers.CatalogController {
	return a.controller
}

// LoadCatalog reads the configured file. Failures yield an empty catalog.
func (a *Application) LoadCatalog() []catalog.Car {
	return a.loader.Load(a.config.CatalogFile)
}

// Reload replaces the controller's catalog with a fresh read of the file.
// Must run on the UI goroutine.
func (a *Application) Reload() {
	a.controller.SetCatalog(a.LoadCatalog())
}

// Run starts the configured front end and blocks until it exits
func (a *Application) Run() error {
	switch a.config.Interface {
	case config.InterfaceTUI:
		return a.runTerminal()
	case config.InterfaceGUI:
		return a.runGUI()
	default:
		return fmt.Errorf("unknown interface %q", a.config.Interface)
	}
}

// startWatcher runs a catalog watcher when enabled. post must hand the reload
// to the UI goroutine.
func (a *Application) startWatcher(post func()) {
	if !a.config.Watch {
		return
	}

	watcher, err := watch.New(a.config.CatalogFile, post, a.logger)
	if err != nil {
		a.logger.Error("Application", fmt.Errorf("catalog watcher disabled: %w", err), map[string]interface{}{
			"file": a.config.CatalogFile,
		})
		return
	}

	a.shutdown.Register(watcher)
	go watcher.Run(a.shutdown.Context())
}
