package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	path := filepath.Join(t.TempDir(), "survey.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Carimbo", " Frequência ", "Idade"},
		{"2024-01-01", "Diariamente", 31},
		{"2024-01-02", "", 44},
		{"2024-01-03", "Nunca"},
	})

	ds, err := NewLoader(nil, nil).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Carimbo", " Frequência ", "Idade"}, ds.Headers())
	assert.Equal(t, 3, ds.Len())

	_, ok := ds.Column("Frequência")
	assert.False(t, ok)
	cells, ok := ds.Column(" Frequência ")
	require.True(t, ok)
	assert.Equal(t, []Cell{Text("Diariamente"), Missing(), Text("Nunca")}, cells)

	ages, ok := ds.Column("Idade")
	require.True(t, ok)
	assert.Equal(t, []Cell{Text("31"), Text("44"), Missing()}, ages)
}

func TestLoadUsesFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Outra")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Pergunta"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Sim"))
	require.NoError(t, f.SetCellValue("Outra", "A1", "Ignorada"))
	path := filepath.Join(t.TempDir(), "two.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := NewLoader(nil, nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pergunta"}, ds.Headers())
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.csv")
	content := "\ufeffQuestão,Outra\nA; B,x\n,y\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ds, err := NewLoader(nil, nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Questão", "Outra"}, ds.Headers())

	cells, ok := ds.Column("Questão")
	require.True(t, ok)
	assert.Equal(t, []Cell{Text("A; B"), Missing()}, cells)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(nil, nil).Load(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	_, err := NewLoader(nil, nil).Load(context.Background(), path)
	assert.Error(t, err)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := NewLoader(nil, nil).Load(context.Background(), "dados.ods")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadReaderWithoutHeader(t *testing.T) {
	_, err := NewLoader(nil, nil).LoadReader(strings.NewReader(""), "empty.csv", FormatCSV)
	assert.ErrorIs(t, err, ErrNoHeader)
}
