package app

import (
	"errors"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"survey-report/internal/chart"
	"survey-report/internal/config"
	"survey-report/internal/gui"
	"survey-report/internal/logger"
	"survey-report/internal/report"
	"survey-report/internal/timing"
)

const (
	AppName    = "Análise de Pesquisa sobre Animais em Situação de Rua"
	AppID      = "com.surveyreport.analisepesquisa"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	report     *report.Report
	logger     logger.Logger
	lifecycle  *Lifecycle
}

// NewApplication creates the desktop application for an already built report.
func NewApplication(cfg config.Config, rep *report.Report, tracker *timing.Tracker, log logger.Logger) (*Application, error) {
	return New(fyneapp.NewWithID(AppID), cfg, rep, tracker, log)
}

// New wires the window, tabs and menus onto fyneApp. Tests pass a test app here.
// tracker holds the load and aggregation timings summarised on exit; nil starts an empty one.
func New(fyneApp fyne.App, cfg config.Config, rep *report.Report, tracker *timing.Tracker, log logger.Logger) (*Application, error) {
	if rep == nil {
		return nil, errors.New("report is required")
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if tracker == nil {
		tracker = timing.NewTracker(log)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	renderer := chart.NewRenderer(chart.DefaultWidth, chart.DefaultHeight)
	guiManager := gui.NewManager(window, log, renderer)
	guiManager.MountReport(rep)

	lifecycle := NewLifecycle(log, tracker, guiManager)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		report:     rep,
		logger:     log,
		lifecycle:  lifecycle,
	}

	handlers := NewHandlers(rep, renderer, guiManager, log)
	guiManager.SetExportHandler(handlers.HandleExport)
	guiManager.SetQuitHandler(application.Quit)

	window.SetMainMenu(guiManager.BuildMainMenu())
	window.SetContent(guiManager.GetMainContainer())

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version": AppVersion,
		"tabs":    len(rep.Sections),
		"charts":  rep.Charts(),
	})
	return application, nil
}

// Run shows the window and blocks until the user closes it.
func (a *Application) Run() error {
	a.lifecycle.Attach(a.window, func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) GUI() *gui.Manager {
	return a.guiManager
}
