package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	windowColor    = color.NRGBA{R: 53, G: 53, B: 53, A: 255}
	baseColor      = color.NRGBA{R: 42, G: 42, B: 42, A: 255}
	alternateColor = color.NRGBA{R: 66, G: 66, B: 66, A: 255}
	highlightColor = color.NRGBA{R: 42, G: 130, B: 218, A: 255}
	selectionColor = color.NRGBA{R: 42, G: 130, B: 218, A: 140}
)

// catalogTheme is a fixed dark palette; the user's light/dark preference is ignored.
type catalogTheme struct{}

var _ fyne.Theme = (*catalogTheme)(nil)

func NewTheme() fyne.Theme {
	return &catalogTheme{}
}

func (t *catalogTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return windowColor
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return baseColor
	case theme.ColorNameButton, theme.ColorNameHeaderBackground:
		return alternateColor
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHyperlink:
		return highlightColor
	case theme.ColorNameSelection:
		return selectionColor
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (t *catalogTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *catalogTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *catalogTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
