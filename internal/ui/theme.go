package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ConverterTheme keeps the default look with status colors tuned for the result line
type ConverterTheme struct{}

// NewConverterTheme creates the application theme
func NewConverterTheme() fyne.Theme {
	return &ConverterTheme{}
}

// Color returns theme colors
func (t *ConverterTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		if variant == theme.VariantDark {
			return color.RGBA{R: 239, G: 83, B: 80, A: 255}
		}
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 245, G: 124, B: 0, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ConverterTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ConverterTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with roomier controls
func (t *ConverterTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameCaptionText:
		return 11
	}
	return theme.DefaultTheme().Size(name)
}
