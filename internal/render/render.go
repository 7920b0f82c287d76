// Package render draws the year-summary image: a blue gradient card with
// seven metric rows, the GARMIN wordmark down the right edge and a
// "connect <year>" footer, written out as a PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strconv"

	"github.com/fogleman/gg"

	"souhrn/internal/core"
)

// Canvas geometry. The layout is fixed; nothing scales with content.
const (
	width  = 900
	height = 1000

	rowStartY = 60
	rowPitch  = 110
	discX     = 50
	discSize  = 30
	valueX    = 100
	labelDY   = 55

	wordmarkX      = width - 80
	wordmarkStartY = 100
	wordmarkPitch  = 50

	footerMargin = 50
	footerY      = height - 80
	dividerY     = height - 150
)

const wordmark = "GARMIN"

var (
	gradientTop    = color.RGBA{0, 40, 80, 255}
	gradientBottom = color.RGBA{0, 80, 140, 255}
	valueColor     = color.RGBA{255, 255, 255, 255}
	labelColor     = color.RGBA{150, 180, 210, 255}
	dividerColor   = color.RGBA{100, 130, 160, 255}
)

// Per-metric indicator colors.
var roleColors = map[Icon]color.RGBA{
	IconSteps:      {100, 149, 237, 255},
	IconActivities: {255, 99, 71, 255},
	IconFrequent:   {255, 165, 0, 255},
	IconTime:       {218, 112, 214, 255},
	IconDistance:   {255, 200, 100, 255},
	IconElevation:  {50, 205, 50, 255},
	IconCalories:   {255, 69, 0, 255},
}

// Options carries the font configuration. Empty or unresolvable paths
// degrade to the built-in fallback face.
type Options struct {
	FontBoldPath    string
	FontRegularPath string
}

type metricRow struct {
	icon  Icon
	value string
	label string
}

func metricRows(s core.Summary) []metricRow {
	return []metricRow{
		{IconSteps, core.FormatNumber(s.TotalSteps, 0), "Kroky"},
		{IconActivities, strconv.Itoa(s.TotalActivities), "Celkový počet aktivit"},
		{IconFrequent, fmt.Sprintf("%dx %s", s.MostFrequentCount, s.MostFrequentType), "Nejčastější aktivita"},
		{IconTime, core.FormatTime(s.TotalSeconds), "Čas aktivity"},
		{IconDistance, core.FormatNumber(s.TotalDistanceKm, 1) + " km", "Vzdálenost v aktivitě"},
		{IconElevation, core.FormatNumber(s.TotalElevation, 0) + " m", "Výstup aktivity"},
		{IconCalories, core.FormatNumber(s.TotalCalories, 0), "Kalorie v aktivitě"},
	}
}

// WriteSummary renders the summary card, writes it as a PNG to outPath and
// returns the finished image. Font trouble never fails the render; an
// unwritable output path does.
func WriteSummary(s core.Summary, outPath string, opts Options) (image.Image, error) {
	dc := gg.NewContext(width, height)
	fonts := loadFonts(opts.FontBoldPath, opts.FontRegularPath)

	drawBackground(dc)

	y := float64(rowStartY)
	for _, row := range metricRows(s) {
		dc.SetColor(roleColors[row.icon])
		dc.DrawCircle(discX+discSize/2, y+15+discSize/2, discSize/2)
		dc.Fill()

		dc.SetFontFace(fonts.big)
		dc.SetColor(valueColor)
		dc.DrawStringAnchored(row.value, valueX, y, 0, 1)

		dc.SetFontFace(fonts.medium)
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(row.label, valueX, y+labelDY, 0, 1)

		y += rowPitch
	}

	drawWordmark(dc, fonts)

	dc.SetColor(dividerColor)
	dc.SetLineWidth(1)
	dc.DrawLine(footerMargin, dividerY, width-footerMargin, dividerY)
	dc.Stroke()

	dc.SetFontFace(fonts.title)
	dc.SetColor(valueColor)
	dc.DrawStringAnchored(fmt.Sprintf("connect %d", s.Year), width-footerMargin, footerY, 1, 1)

	if err := dc.SavePNG(outPath); err != nil {
		return nil, fmt.Errorf("save summary image: %w", err)
	}
	slog.Info("Summary image saved", "path", outPath)

	return dc.Image(), nil
}

func drawBackground(dc *gg.Context) {
	grad := gg.NewLinearGradient(0, 0, 0, height)
	grad.AddColorStop(0, gradientTop)
	grad.AddColorStop(1, gradientBottom)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, width, height)
	dc.Fill()
}

// drawWordmark stacks the brand letters down the right edge, each one
// centered on the wordmark column.
func drawWordmark(dc *gg.Context, fonts fontSet) {
	dc.SetFontFace(fonts.title)
	dc.SetColor(valueColor)
	y := float64(wordmarkStartY)
	for _, letter := range wordmark {
		dc.DrawStringAnchored(string(letter), wordmarkX, y, 0.5, 1)
		y += wordmarkPitch
	}
}
