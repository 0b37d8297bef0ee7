package timetable

import (
	"bytes"
	"fmt"
	"image/color"

	"institute/models"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	cellWidth       = 170.0
	cellHeight      = 90.0
	headerHeight    = 50.0
	timeLabelWidth  = 80.0
	chipHeight      = 26.0
	chipPadding     = 4.0
	chipBorderRound = 4.0
)

var (
	gridBgColor    = color.RGBA{245, 246, 248, 255}
	headerBgColor  = color.RGBA{255, 228, 196, 255}
	gridLineColor  = color.RGBA{200, 200, 200, 255}
	labelTextColor = color.RGBA{60, 64, 70, 255}
	chipBgColor    = color.RGBA{219, 234, 254, 255}
	chipTextColor  = color.RGBA{30, 40, 60, 255}
)

// RenderWeekImage draws the weekly grid as a PNG: day columns, hourly rows,
// one chip per slot in its cell. Overflowing chips are clipped to the cell.
func RenderWeekImage(slots []models.ScheduleSlot) ([]byte, error) {
	width := int(timeLabelWidth + cellWidth*float64(len(Days)))
	height := int(headerHeight + cellHeight*float64(len(Times)))

	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(gridBgColor)
	dc.Clear()

	// day header
	dc.SetColor(headerBgColor)
	dc.DrawRectangle(0, 0, float64(width), headerHeight)
	dc.Fill()
	dc.SetColor(labelTextColor)
	for i, day := range Days {
		x := timeLabelWidth + cellWidth*float64(i) + cellWidth/2
		dc.DrawStringAnchored(day, x, headerHeight/2, 0.5, 0.5)
	}

	// time labels
	for i, tm := range Times {
		y := headerHeight + cellHeight*float64(i) + cellHeight/2
		dc.DrawStringAnchored(tm, timeLabelWidth/2, y, 0.5, 0.5)
	}

	// grid lines
	dc.SetColor(gridLineColor)
	for i := 0; i <= len(Days); i++ {
		x := timeLabelWidth + cellWidth*float64(i)
		dc.DrawLine(x, 0, x, float64(height))
		dc.Stroke()
	}
	for i := 0; i <= len(Times); i++ {
		y := headerHeight + cellHeight*float64(i)
		dc.DrawLine(0, y, float64(width), y)
		dc.Stroke()
	}

	grid := GridFor(slots)
	for di, day := range Days {
		for ti, tm := range Times {
			cellX := timeLabelWidth + cellWidth*float64(di)
			cellY := headerHeight + cellHeight*float64(ti)
			for si, s := range grid[day][tm] {
				chipY := cellY + chipPadding + float64(si)*(chipHeight+chipPadding)
				if chipY+chipHeight > cellY+cellHeight {
					break
				}
				dc.SetColor(chipBgColor)
				dc.DrawRoundedRectangle(cellX+chipPadding, chipY, cellWidth-2*chipPadding, chipHeight, chipBorderRound)
				dc.Fill()
				dc.SetColor(chipTextColor)
				label := fmt.Sprintf("%s • B%s • %s", s.Category, s.BatchNumber, s.TrainerName)
				dc.DrawStringAnchored(label, cellX+cellWidth/2, chipY+chipHeight/2, 0.5, 0.5)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
