package app

import (
	"fmt"

	"survey-report/internal/chart"
	"survey-report/internal/gui"
	"survey-report/internal/logger"
	"survey-report/internal/report"
)

type Handlers struct {
	report     *report.Report
	renderer   *chart.Renderer
	guiManager *gui.Manager
	logger     logger.Logger
}

func NewHandlers(rep *report.Report, renderer *chart.Renderer, gm *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		report:     rep,
		renderer:   renderer,
		guiManager: gm,
		logger:     log,
	}
}

// HandleExport writes every chart into dir off the UI goroutine.
func (h *Handlers) HandleExport(dir string) {
	h.guiManager.UpdateStatus("Exportando gráficos...")

	go func() {
		paths, err := h.Export(dir)
		if err != nil {
			h.guiManager.ShowError("Exportar gráficos", err)
			h.guiManager.UpdateStatus("Falha na exportação")
			return
		}

		msg := fmt.Sprintf("%d gráficos exportados para %s", len(paths), dir)
		h.guiManager.UpdateStatus(msg)
		h.guiManager.ShowInformation("Exportar gráficos", msg)
	}()
}

// Export writes the charts synchronously.
func (h *Handlers) Export(dir string) ([]string, error) {
	paths, err := h.report.Export(dir, h.renderer)
	if err != nil {
		return paths, err
	}
	h.logger.Info("Handlers", "charts exported", map[string]interface{}{
		"dir":   dir,
		"files": len(paths),
	})
	return paths, nil
}
