package gui

import (
	"fmt"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"survey-report/internal/chart"
	"survey-report/internal/gui/components"
	"survey-report/internal/logger"
	"survey-report/internal/report"
)

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	renderer   *chart.Renderer
	isShutdown atomic.Bool

	tabs      *container.AppTabs
	statusBar *components.StatusBar

	exportHandler func(dir string)
	quitHandler   func()
}

func NewManager(window fyne.Window, log logger.Logger, renderer *chart.Renderer) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if renderer == nil {
		renderer = chart.NewRenderer(0, 0)
	}

	tabs := container.NewAppTabs()
	tabs.SetTabLocation(container.TabLocationTop)

	return &Manager{
		window:    window,
		logger:    log,
		renderer:  renderer,
		tabs:      tabs,
		statusBar: components.NewStatusBar(),
	}
}

// MountReport adds one tab per report section, in section order.
func (m *Manager) MountReport(rep *report.Report) {
	for _, sec := range rep.Sections {
		m.tabs.Append(m.BuildTab(sec))
	}
	if len(m.tabs.Items) > 0 {
		m.tabs.SelectIndex(0)
	}

	m.statusBar.SetSummary(rep.Rows, rep.Charts(), len(rep.Sections))
	m.statusBar.SetStatus(fmt.Sprintf("Dados carregados de %s", rep.Source))

	m.logger.Info("GUIManager", "report mounted", map[string]interface{}{
		"tabs":   len(m.tabs.Items),
		"charts": rep.Charts(),
	})
}

// BuildTab renders the section's pie, or leaves the tab empty when there is none.
func (m *Manager) BuildTab(sec report.Section) *container.TabItem {
	label := sec.Question.TabLabel
	if sec.Pie == nil {
		return container.NewTabItem(label, components.NewEmptyDisplay())
	}

	img, err := m.renderer.Render(sec.Pie)
	if err != nil {
		m.logger.Error("GUIManager", err, map[string]interface{}{"tab": label})
		return container.NewTabItem(label, components.NewEmptyDisplay())
	}

	return container.NewTabItem(label, container.NewPadded(components.NewChartDisplay(img)))
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		nil, nil,
		m.tabs,
	)
}

func (m *Manager) Tabs() *container.AppTabs {
	return m.tabs
}

func (m *Manager) StatusBar() *components.StatusBar {
	return m.statusBar
}

func (m *Manager) SetExportHandler(handler func(dir string)) {
	m.exportHandler = handler
}

func (m *Manager) SetQuitHandler(handler func()) {
	m.quitHandler = handler
}

// UpdateStatus is safe to call from any goroutine. After Shutdown the status is only logged.
func (m *Manager) UpdateStatus(status string) {
	if !m.IsShutdown() {
		fyne.Do(func() {
			m.statusBar.SetStatus(status)
		})
	}
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	if m.IsShutdown() {
		return
	}

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) ShowInformation(title, message string) {
	if m.IsShutdown() {
		return
	}
	fyne.Do(func() {
		dialog.ShowInformation(title, message, m.window)
	})
}

// Shutdown detaches the manager from the window so late background work such as a
// running export no longer touches widgets or dialogs.
func (m *Manager) Shutdown() {
	if !m.isShutdown.CompareAndSwap(false, true) {
		return
	}
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}

func (m *Manager) IsShutdown() bool {
	return m.isShutdown.Load()
}
