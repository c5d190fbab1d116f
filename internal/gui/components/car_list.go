package components

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const noSelection = -1

// CarList shows one label per car in the active order
type CarList struct {
	List *widget.List

	labels           []string
	selected         int
	selectionHandler func(int)
}

func NewCarList() *CarList {
	cl := &CarList{selected: noSelection}

	cl.List = widget.NewList(
		func() int {
			return len(cl.labels)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < len(cl.labels) {
				item.(*widget.Label).SetText(cl.labels[id])
			}
		},
	)
	cl.List.OnSelected = cl.onSelected

	return cl
}

func (cl *CarList) SetSelectionHandler(handler func(int)) {
	cl.selectionHandler = handler
}

// SetLabels replaces the rows when they differ from what is shown
func (cl *CarList) SetLabels(labels []string) {
	if slices.Equal(cl.labels, labels) {
		return
	}
	cl.labels = slices.Clone(labels)
	cl.ClearSelection()
	cl.List.Refresh()
}

// ClearSelection removes the highlight without notifying the handler
func (cl *CarList) ClearSelection() {
	if cl.selected == noSelection {
		return
	}
	cl.selected = noSelection
	cl.List.UnselectAll()
}

// Selected returns the highlighted row, or -1
func (cl *CarList) Selected() int {
	return cl.selected
}

func (cl *CarList) Len() int {
	return len(cl.labels)
}

func (cl *CarList) Labels() []string {
	return slices.Clone(cl.labels)
}

func (cl *CarList) onSelected(id widget.ListItemID) {
	cl.selected = id
	if cl.selectionHandler != nil {
		cl.selectionHandler(id)
	}
}
