package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"survey-report/internal/logger"
	"survey-report/internal/timing"
)

var (
	ErrNoSheets          = errors.New("workbook has no sheets")
	ErrNoHeader          = errors.New("sheet has no header row")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat maps a file extension onto a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

type Loader struct {
	logger        logger.Logger
	timingTracker *timing.Tracker
}

func NewLoader(log logger.Logger, tracker *timing.Tracker) *Loader {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if tracker == nil {
		tracker = timing.NewTracker(log)
	}
	return &Loader{logger: log, timingTracker: tracker}
}

// Load reads the first sheet of the spreadsheet at path, using its first row as headers.
func (l *Loader) Load(ctx context.Context, path string) (*Dataset, error) {
	ctx = l.timingTracker.StartTiming(ctx, timing.OpLoadDataset)
	defer l.timingTracker.EndTiming(ctx)

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	l.logger.Debug("Loader", "reading spreadsheet", map[string]interface{}{
		"path":   path,
		"format": string(format),
	})

	ds, err := l.LoadReader(f, path, format)
	if err != nil {
		return nil, err
	}

	l.logger.Info("Loader", "dataset loaded", map[string]interface{}{
		"path":    path,
		"rows":    ds.Len(),
		"columns": len(ds.headers),
	})
	return ds, nil
}

// LoadReader parses an already opened spreadsheet; source is only used for labeling.
func (l *Loader) LoadReader(r io.Reader, source string, format Format) (*Dataset, error) {
	var (
		rows [][]string
		err  error
	)
	switch format {
	case FormatXLSX:
		rows, err = readWorkbook(r)
	case FormatCSV:
		rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	if len(rows) == 0 || isBlank(rows[0]) {
		return nil, fmt.Errorf("failed to read %s: %w", source, ErrNoHeader)
	}

	// Header text is kept verbatim, surrounding spaces included; only a UTF-8 byte
	// order mark is dropped from the first cell.
	headers := make([]string, len(rows[0]))
	copy(headers, rows[0])
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	return New(source, headers, rows[1:]), nil
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}
