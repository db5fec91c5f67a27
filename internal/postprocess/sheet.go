package postprocess

import (
	"image"

	"github.com/fogleman/gg"
)

// Tile is one labelled image on a contact sheet.
type Tile struct {
	Label string
	Image image.Image
}

const (
	sheetPad     = 8
	sheetCaption = 18
	sheetColumns = 3
)

// ContactSheet lays tiles out left to right, sheetColumns per row, each with
// its label underneath. Cells are sized to the largest tile.
func ContactSheet(tiles []Tile) image.Image {
	if len(tiles) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	cellW, cellH := 0, 0
	for _, t := range tiles {
		b := t.Image.Bounds()
		cellW = max(cellW, b.Dx())
		cellH = max(cellH, b.Dy())
	}
	cols := min(len(tiles), sheetColumns)
	rows := (len(tiles) + cols - 1) / cols

	stepX := cellW + sheetPad
	stepY := cellH + sheetCaption + sheetPad
	dc := gg.NewContext(cols*stepX+sheetPad, rows*stepY+sheetPad)
	dc.SetRGB(0.12, 0.12, 0.12)
	dc.Clear()

	dc.SetRGB(1, 1, 1)
	for i, t := range tiles {
		x := sheetPad + (i%cols)*stepX
		y := sheetPad + (i/cols)*stepY
		dc.DrawImage(t.Image, x, y)
		dc.DrawStringAnchored(t.Label, float64(x+cellW/2), float64(y+cellH+sheetCaption/2), 0.5, 0.5)
	}
	return dc.Image()
}
