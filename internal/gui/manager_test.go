package gui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey-report/internal/chart"
	"survey-report/internal/dataset"
	"survey-report/internal/report"
	"survey-report/internal/survey"
)

func testReport(t *testing.T) *report.Report {
	t.Helper()
	ds := dataset.New("pesquisa.xlsx",
		[]string{"Frequência", "Quais problemas?"},
		[][]string{{"Diariamente", "Fome; Abandono"}, {"Nunca", ""}})
	questions := []survey.QuestionSpec{
		{TabLabel: "Frequência", Match: "frequência", ChartTitle: "Frequência"},
		{TabLabel: "Problemas", Match: "problemas", ChartTitle: "Problemas", Multiple: true},
		{TabLabel: "ONGs", Match: "ongs", ChartTitle: "ONGs"},
	}
	rep, err := report.NewBuilder(questions, ";", nil, nil).Build(context.Background(), ds)
	require.NoError(t, err)
	return rep
}

func chartImage(obj fyne.CanvasObject) *canvas.Image {
	c, ok := obj.(*fyne.Container)
	if !ok || len(c.Objects) != 1 {
		return nil
	}
	img, _ := c.Objects[0].(*canvas.Image)
	return img
}

func TestMountReportBuildsTabsInOrder(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	defer w.Close()

	m := NewManager(w, nil, chart.NewRenderer(200, 150))
	m.MountReport(testReport(t))

	items := m.Tabs().Items
	require.Len(t, items, 3)
	assert.Equal(t, "Frequência", items[0].Text)
	assert.Equal(t, "Problemas", items[1].Text)
	assert.Equal(t, "ONGs", items[2].Text)

	img := chartImage(items[0].Content)
	require.NotNil(t, img)
	assert.Equal(t, 200, img.Image.Bounds().Dx())
	assert.NotNil(t, chartImage(items[1].Content))

	empty, ok := items[2].Content.(*fyne.Container)
	require.True(t, ok)
	assert.Empty(t, empty.Objects)

	assert.Equal(t, 0, m.Tabs().SelectedIndex())
	assert.Equal(t, "Respondentes: 2 | Gráficos: 2/3", m.StatusBar().Summary())
	assert.Equal(t, "Dados carregados de pesquisa.xlsx", m.StatusBar().Status())
}

func TestMainContainerShowsTabs(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	defer w.Close()

	m := NewManager(w, nil, nil)
	m.MountReport(testReport(t))
	w.SetContent(m.GetMainContainer())

	assert.NotNil(t, w.Content())
}

func TestMainMenuQuit(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	defer w.Close()

	m := NewManager(w, nil, nil)
	quit := false
	m.SetQuitHandler(func() { quit = true })

	menu := m.BuildMainMenu()
	require.Len(t, menu.Items, 1)
	items := menu.Items[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, "Exportar gráficos…", items[0].Label)

	items[2].Action()
	assert.True(t, quit)
}

func TestShutdownDetachesFromWindow(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	defer w.Close()

	m := NewManager(w, nil, nil)
	m.UpdateStatus("antes")
	assert.Equal(t, "antes", m.StatusBar().Status())

	m.Shutdown()
	m.Shutdown()
	assert.True(t, m.IsShutdown())

	m.UpdateStatus("depois")
	assert.Equal(t, "antes", m.StatusBar().Status())
}
