package render

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Icon identifies one of the per-metric glyphs.
type Icon string

const (
	IconSteps      Icon = "steps"
	IconActivities Icon = "activities"
	IconFrequent   Icon = "frequent"
	IconTime       Icon = "time"
	IconDistance   Icon = "distance"
	IconElevation  Icon = "elevation"
	IconCalories   Icon = "calories"
)

// DrawIcon draws the glyph for the given metric with its top-left corner
// at (x, y) inside a size×size box.
func DrawIcon(dc *gg.Context, icon Icon, x, y float64, c color.Color, size float64) {
	dc.SetColor(c)
	switch icon {
	case IconSteps:
		// two footprints
		fillEllipse(dc, x, y, x+size/2, y+size)
		fillEllipse(dc, x+size/2, y+size/4, x+size, y+size*3/4)
	case IconActivities:
		// stick figure with raised arms
		fillEllipse(dc, x+size/3, y, x+size*2/3, y+size/3)
		strokeLine(dc, x+size/2, y+size/3, x+size/2, y+size*2/3, 3)
		strokeLine(dc, x+size/4, y+size/2, x+size*3/4, y+size/2, 3)
		strokeLine(dc, x+size/2, y+size*2/3, x+size/4, y+size, 3)
		strokeLine(dc, x+size/2, y+size*2/3, x+size*3/4, y+size, 3)
	case IconTime:
		// clock face with hands
		dc.SetLineWidth(3)
		dc.DrawCircle(x+size/2, y+size/2, size/2)
		dc.Stroke()
		strokeLine(dc, x+size/2, y+size/4, x+size/2, y+size/2, 2)
		strokeLine(dc, x+size/2, y+size/2, x+size*3/4, y+size/2, 2)
	case IconDistance:
		// road narrowing toward the horizon
		dc.MoveTo(x, y+size)
		dc.LineTo(x+size/3, y)
		dc.LineTo(x+size*2/3, y)
		dc.LineTo(x+size, y+size)
		dc.ClosePath()
		dc.SetLineWidth(2)
		dc.Stroke()
	case IconElevation:
		// mountain
		dc.MoveTo(x, y+size)
		dc.LineTo(x+size/2, y)
		dc.LineTo(x+size, y+size)
		dc.ClosePath()
		dc.Fill()
	case IconCalories:
		// flame
		fillEllipse(dc, x+size/4, y+size/3, x+size*3/4, y+size)
		dc.MoveTo(x+size/2, y)
		dc.LineTo(x+size/4, y+size/2)
		dc.LineTo(x+size*3/4, y+size/2)
		dc.ClosePath()
		dc.Fill()
	case IconFrequent:
		// badge
		dc.SetLineWidth(2)
		dc.DrawCircle(x+size/2, y+size/2, size/2)
		dc.Stroke()
		fillEllipse(dc, x+size/4, y+size/4, x+size*3/4, y+size*3/4)
	}
}

// fillEllipse fills the ellipse inscribed in the (x0,y0)-(x1,y1) box.
func fillEllipse(dc *gg.Context, x0, y0, x1, y1 float64) {
	dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	dc.Fill()
}

func strokeLine(dc *gg.Context, x0, y0, x1, y1, width float64) {
	dc.SetLineWidth(width)
	dc.DrawLine(x0, y0, x1, y1)
	dc.Stroke()
}
