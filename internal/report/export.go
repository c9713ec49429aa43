package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"survey-report/internal/chart"
)

// Export writes one PNG per charted section into dir and returns the written paths.
func (r *Report) Export(dir string, renderer *chart.Renderer) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}

	var written []string
	for i, s := range r.Sections {
		if s.Pie == nil {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%02d_%s.png", i+1, Slug(s.Question.TabLabel)))
		if err := writeChart(path, s.Pie, renderer); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeChart(path string, p *chart.Pie, renderer *chart.Renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := renderer.WritePNG(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Slug folds a tab label into a lowercase ASCII file name fragment.
func Slug(label string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(label) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(unicode.ToLower(r))
		default:
			if s := b.String(); s != "" && !strings.HasSuffix(s, "_") {
				b.WriteByte('_')
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
