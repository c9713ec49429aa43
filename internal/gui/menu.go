package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// BuildMainMenu creates the "Arquivo" menu with chart export and quit entries.
func (m *Manager) BuildMainMenu() *fyne.MainMenu {
	exportItem := fyne.NewMenuItem("Exportar gráficos…", m.promptExport)

	quitItem := fyne.NewMenuItem("Sair", func() {
		if m.quitHandler != nil {
			m.quitHandler()
		}
	})
	quitItem.IsQuit = true

	return fyne.NewMainMenu(
		fyne.NewMenu("Arquivo", exportItem, fyne.NewMenuItemSeparator(), quitItem),
	)
}

func (m *Manager) promptExport() {
	if m.IsShutdown() || m.exportHandler == nil {
		return
	}

	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			m.ShowError("Exportar gráficos", err)
			return
		}
		if dir == nil {
			return
		}
		m.exportHandler(dir.Path())
	}, m.window)
}
