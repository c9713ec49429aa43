package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	ChartMinWidth  = 480
	ChartMinHeight = 320
)

// NewChartDisplay wraps a rendered chart so it scales with the tab while keeping
// its aspect ratio.
func NewChartDisplay(img image.Image) *canvas.Image {
	chartImage := canvas.NewImageFromImage(img)
	chartImage.FillMode = canvas.ImageFillContain
	chartImage.ScaleMode = canvas.ImageScaleSmooth
	chartImage.SetMinSize(fyne.NewSize(ChartMinWidth, ChartMinHeight))
	return chartImage
}

// NewEmptyDisplay is the content of a tab without a chart.
func NewEmptyDisplay() *fyne.Container {
	return container.NewStack()
}
