package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	summaryLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Pronto")
	summaryLabel := widget.NewLabel("Respondentes: --")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		summaryLabel,
	)

	return &StatusBar{
		container:    mainContainer,
		statusLabel:  statusLabel,
		summaryLabel: summaryLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetSummary(rows, charts, tabs int) {
	sb.summaryLabel.SetText(fmt.Sprintf("Respondentes: %d | Gráficos: %d/%d", rows, charts, tabs))
}

func (sb *StatusBar) Summary() string {
	return sb.summaryLabel.Text
}
