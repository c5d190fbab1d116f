package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"car-catalog/internal/catalog"
)

// Toolbar holds the sort selector and the producer link
type Toolbar struct {
	SortSelect     *widget.Select
	ProducerButton *widget.Button

	orders            []catalog.SortOrder
	sortChangeHandler func(catalog.SortOrder)
	producerHandler   func()
}

func NewToolbar() *Toolbar {
	t := &Toolbar{orders: catalog.SelectableOrders()}

	options := make([]string, len(t.orders))
	for i, order := range t.orders {
		options[i] = order.Label()
	}

	t.SortSelect = widget.NewSelect(options, t.onSortSelected)
	t.SortSelect.PlaceHolder = "Sort by"

	t.ProducerButton = widget.NewButton("Producer", t.onProducer)

	return t
}

func (t *Toolbar) SetSortChangeHandler(handler func(catalog.SortOrder)) {
	t.sortChangeHandler = handler
}

func (t *Toolbar) SetProducerHandler(handler func()) {
	t.producerHandler = handler
}

// ShowOrder reflects order in the selector without firing the change handler
func (t *Toolbar) ShowOrder(order catalog.SortOrder) {
	selected := ""
	for _, o := range t.orders {
		if o == order {
			selected = o.Label()
		}
	}
	if t.SortSelect.Selected == selected {
		return
	}
	t.SortSelect.Selected = selected
	t.SortSelect.Refresh()
}

// ProducerColumn pins the producer button to the top right
func (t *Toolbar) ProducerColumn() *fyne.Container {
	return container.NewVBox(t.ProducerButton, layout.NewSpacer())
}

func (t *Toolbar) onSortSelected(string) {
	index := t.SortSelect.SelectedIndex()
	if index < 0 || index >= len(t.orders) || t.sortChangeHandler == nil {
		return
	}
	t.sortChangeHandler(t.orders[index])
}

func (t *Toolbar) onProducer() {
	if t.producerHandler != nil {
		t.producerHandler()
	}
}
