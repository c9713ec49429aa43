package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

var ErrNoChart = errors.New("no chart to render")

// pastel1 mirrors the matplotlib Pastel1 qualitative map.
var pastel1 = []drawing.Color{
	drawing.ColorFromHex("fbb4ae"),
	drawing.ColorFromHex("b3cde3"),
	drawing.ColorFromHex("ccebc5"),
	drawing.ColorFromHex("decbe4"),
	drawing.ColorFromHex("fed9a6"),
	drawing.ColorFromHex("ffffcc"),
	drawing.ColorFromHex("e5d8bd"),
	drawing.ColorFromHex("fddaec"),
	drawing.ColorFromHex("f2f2f2"),
}

var (
	backgroundColor = drawing.ColorFromHex("f0f0f0")
	titleColor      = drawing.ColorFromHex("333333")
)

func sliceColor(i int) drawing.Color {
	return pastel1[i%len(pastel1)]
}

// Renderer draws pies at a fixed pixel size.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{Width: width, Height: height}
}

func (r *Renderer) build(p *Pie) gochart.PieChart {
	values := make([]gochart.Value, len(p.Slices))
	for i, s := range p.Slices {
		values[i] = gochart.Value{
			Label: s.Caption(),
			Value: float64(s.Count),
			Style: gochart.Style{
				FillColor:   sliceColor(i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
				FontSize:    8,
				FontColor:   titleColor,
			},
		}
	}

	return gochart.PieChart{
		Title: p.Heading(),
		TitleStyle: gochart.Style{
			FontSize:  10,
			FontColor: titleColor,
		},
		Width:  r.Width,
		Height: r.Height,
		Background: gochart.Style{
			FillColor: backgroundColor,
			Padding:   gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: gochart.Style{
			FillColor: backgroundColor,
		},
		Values: values,
	}
}

// WritePNG encodes p as PNG into w.
func (r *Renderer) WritePNG(w io.Writer, p *Pie) error {
	if p == nil || len(p.Slices) == 0 {
		return ErrNoChart
	}
	pc := r.build(p)
	if err := pc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %q: %w", p.Title, err)
	}
	return nil
}

// Render draws p into an in-memory image suitable for a canvas.Image.
func (r *Renderer) Render(p *Pie) (image.Image, error) {
	var buf bytes.Buffer
	if err := r.WritePNG(&buf, p); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", p.Title, err)
	}
	return img, nil
}
