package arcade

import "fmt"

// SheetDescr describes a sprite sheet laid out as a row-major grid of
// equally sized frames. TotalFrames may be smaller than FramesWide *
// FramesHigh when the last row is only partially filled.
type SheetDescr struct {
	Path        string
	TotalFrames int
	FramesWide  int
	FramesHigh  int
	FrameWidth  float64
	FrameHeight float64
}

// LoadFrames loads the sheet image at descr.Path and slices it into
// TotalFrames sprites. The returned slice is ready to hand to
// NewAnimatedSprite.
func LoadFrames(descr SheetDescr) ([]Sprite, error) {
	sheet, err := LoadSprite(descr.Path)
	if err != nil {
		return nil, err
	}
	return SliceFrames(sheet, descr)
}

// SliceFrames cuts an already-loaded sheet sprite into a row-major grid of
// frames. Every frame shares the sheet's texture. A frame rect that falls
// outside the sheet is an error — slicing never clamps.
func SliceFrames(sheet Sprite, descr SheetDescr) ([]Sprite, error) {
	if descr.FramesWide <= 0 {
		return nil, fmt.Errorf("arcade: sheet %q: FramesWide must be positive, got %d",
			descr.Path, descr.FramesWide)
	}

	frames := make([]Sprite, 0, descr.TotalFrames)
	for i := 0; i < descr.TotalFrames; i++ {
		col := i % descr.FramesWide
		row := i / descr.FramesWide
		frame, ok := sheet.Region(Rect{
			X:      float64(col) * descr.FrameWidth,
			Y:      float64(row) * descr.FrameHeight,
			Width:  descr.FrameWidth,
			Height: descr.FrameHeight,
		})
		if !ok {
			sw, sh := sheet.Size()
			return nil, fmt.Errorf("arcade: sheet %q: frame %d (row %d, col %d) outside %gx%g sheet",
				descr.Path, i, row, col, sw, sh)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
