package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const DetailMinWidth = 300

// DetailPanel shows the selected car and the "Show on Web" action
type DetailPanel struct {
	container    *fyne.Container
	DetailLabel  *widget.Label
	SearchButton *widget.Button

	searchHandler func()
}

func NewDetailPanel(prompt string) *DetailPanel {
	panel := &DetailPanel{}

	panel.DetailLabel = widget.NewLabel(prompt)
	panel.DetailLabel.Wrapping = fyne.TextWrapWord

	panel.SearchButton = widget.NewButton("Show on Web", panel.onSearch)
	panel.SearchButton.Importance = widget.HighImportance
	panel.SearchButton.Disable()

	minWidth := canvas.NewRectangle(color.Transparent)
	minWidth.SetMinSize(fyne.NewSize(DetailMinWidth, 0))

	panel.container = container.NewVBox(
		container.NewStack(minWidth, panel.DetailLabel),
		container.NewHBox(panel.SearchButton),
	)

	return panel
}

func (dp *DetailPanel) GetContainer() *fyne.Container {
	return dp.container
}

func (dp *DetailPanel) SetSearchHandler(handler func()) {
	dp.searchHandler = handler
}

func (dp *DetailPanel) SetDetail(text string) {
	if dp.DetailLabel.Text != text {
		dp.DetailLabel.SetText(text)
	}
}

func (dp *DetailPanel) SetSearchEnabled(enabled bool) {
	if enabled {
		dp.SearchButton.Enable()
	} else {
		dp.SearchButton.Disable()
	}
}

func (dp *DetailPanel) onSearch() {
	if dp.searchHandler != nil {
		dp.searchHandler()
	}
}
