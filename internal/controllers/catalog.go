package controllers

import (
	"errors"

	"car-catalog/internal/catalog"
	"car-catalog/internal/logger"
)

const (
	DefaultPrompt      = "Select a car."
	DefaultSearchURL   = "https://www.google.com/search?q="
	DefaultProducerURL = "https://omotech.xyz"

	noSelection = -1
)

var ErrNoSelection = errors.New("no car selected")

// Links holds the two external destinations offered by the viewer
type Links struct {
	SearchURL   string
	ProducerURL string
}

func DefaultLinks() Links {
	return Links{SearchURL: DefaultSearchURL, ProducerURL: DefaultProducerURL}
}

// Snapshot is everything a UI shell needs to render the catalog view
type Snapshot struct {
	Labels        []string
	Detail        string
	Selected      int
	HasSelection  bool
	SearchEnabled bool
	Order         catalog.SortOrder
}

// ChangeHandler receives a snapshot after every state change
type ChangeHandler func(Snapshot)

// CatalogController owns the loaded catalog, the active order and the selection.
// It is not safe for concurrent use: every call must come from the UI event
// goroutine.
type CatalogController struct {
	catalog     []catalog.Car
	activeOrder []catalog.Car
	order       catalog.SortOrder
	selection   int
	links       Links
	logger      logger.Logger

	changeHandlers []ChangeHandler
}

// NewCatalogController creates an empty controller in load order
func NewCatalogController(links Links, log logger.Logger) *CatalogController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if links.SearchURL == "" {
		links.SearchURL = DefaultSearchURL
	}
	if links.ProducerURL == "" {
		links.ProducerURL = DefaultProducerURL
	}

	return &CatalogController{
		catalog:     []catalog.Car{},
		activeOrder: []catalog.Car{},
		order:       catalog.SortLoadOrder,
		selection:   noSelection,
		links:       links,
		logger:      log,
	}
}

// OnChange registers a handler fired after every state change
func (c *CatalogController) OnChange(handler ChangeHandler) {
	c.changeHandlers = append(c.changeHandlers, handler)
}

// SetCatalog replaces the catalog, keeps the current sort order and clears the
// selection.
func (c *CatalogController) SetCatalog(cars []catalog.Car) {
	c.catalog = append([]catalog.Car(nil), cars...)
	c.activeOrder = catalog.Sorted(c.catalog, c.order)
	c.selection = noSelection

	c.logger.Debug("CatalogController", "catalog replaced", map[string]interface{}{
		"cars":  len(c.catalog),
		"order": c.order.String(),
	})
	c.notify()
}

// ApplySort re-derives the active order from the catalog and clears the selection
func (c *CatalogController) ApplySort(order catalog.SortOrder) {
	c.order = order
	c.activeOrder = catalog.Sorted(c.catalog, order)
	c.selection = noSelection

	c.logger.Debug("CatalogController", "sort applied", map[string]interface{}{
		"order": order.String(),
	})
	c.notify()
}

// Select highlights the car at index in the active order and returns its detail.
// An out of range index clears the selection and returns the prompt.
func (c *CatalogController) Select(index int) (string, bool) {
	if index < 0 || index >= len(c.activeOrder) {
		c.selection = noSelection
		c.notify()
		return DefaultPrompt, false
	}

	c.selection = index
	c.notify()
	return c.activeOrder[index].Detail(), true
}

func (c *CatalogController) ClearSelection() {
	c.Select(noSelection)
}

// Selection returns the selected index, if any
func (c *CatalogController) Selection() (int, bool) {
	return c.selection, c.selection != noSelection
}

// Selected returns the selected car, if any
func (c *CatalogController) Selected() (catalog.Car, bool) {
	if c.selection == noSelection {
		return catalog.Car{}, false
	}
	return c.activeOrder[c.selection], true
}

// Labels returns "{brand} {model}" for each car in the active order
func (c *CatalogController) Labels() []string {
	labels := make([]string, len(c.activeOrder))
	for i, car := range c.activeOrder {
		labels[i] = car.Label()
	}
	return labels
}

func (c *CatalogController) Detail() string {
	if car, ok := c.Selected(); ok {
		return car.Detail()
	}
	return DefaultPrompt
}

func (c *CatalogController) SearchEnabled() bool {
	return c.selection != noSelection
}

// SearchURL builds the web search link for the selected car
func (c *CatalogController) SearchURL() (string, error) {
	car, ok := c.Selected()
	if !ok {
		return "", ErrNoSelection
	}
	return c.links.SearchURL + car.SearchQuery(), nil
}

func (c *CatalogController) ProducerURL() string {
	return c.links.ProducerURL
}

func (c *CatalogController) Order() catalog.SortOrder {
	return c.order
}

func (c *CatalogController) Len() int {
	return len(c.activeOrder)
}

func (c *CatalogController) Snapshot() Snapshot {
	selected, ok := c.Selection()
	return Snapshot{
		Labels:        c.Labels(),
		Detail:        c.Detail(),
		Selected:      selected,
		HasSelection:  ok,
		SearchEnabled: c.SearchEnabled(),
		Order:         c.order,
	}
}

func (c *CatalogController) notify() {
	if len(c.changeHandlers) == 0 {
		return
	}
	snapshot := c.Snapshot()
	for _, handler := range c.changeHandlers {
		handler(snapshot)
	}
}
