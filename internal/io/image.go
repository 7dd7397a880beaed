package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// ImageService turns cover art into terminal thumbnails.
//
// ImageService is used to:
//   - Decode JPEG or PNG cover art
//   - Resize it to fit a number of terminal columns
//   - Draw it with half-block characters, two pixels per cell
//
// Example usage:
//
//	svc := NewImageService()
//
//	thumb, _ := svc.Thumbnail(ctx, coverBytes, 24)
//	fmt.Println(svc.HalfBlocks(thumb))
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Thumbnail decodes data and resizes it to at most maxCols pixels wide.
//
// The aspect ratio is preserved and the height is rounded up to an even
// number of pixels so every half-block cell has a top and bottom pixel.
// The Catmull-Rom algorithm is used for high-quality scaling.
//
// Example:
//
//	// A 600x600 cover at 24 columns becomes 24x24 pixels, 12 text rows
//	thumb, err := svc.Thumbnail(ctx, data, 24)
func (s *ImageService) Thumbnail(ctx context.Context, data []byte, maxCols int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if maxCols <= 0 {
		return nil, fmt.Errorf("invalid thumbnail width %d", maxCols)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return s.Fit(img, maxCols)
}

// Fit resizes img to at most maxCols pixels wide, keeping the aspect ratio
// and an even height. Images already narrow enough keep their size.
func (s *ImageService) Fit(img image.Image, maxCols int) (image.Image, error) {
	if maxCols <= 0 {
		return nil, fmt.Errorf("invalid thumbnail width %d", maxCols)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty image")
	}

	if width > maxCols {
		ratio := float64(height) / float64(width)
		width = maxCols
		height = int(float64(maxCols)*ratio + 0.5)
	}
	if height < 1 {
		height = 1
	}
	if height%2 == 1 {
		height++
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst, nil
}

// HalfBlocks draws img with "▀" cells: the foreground colors the upper pixel
// and the background the lower one. The result has one line per two pixel rows.
func (s *ImageService) HalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	var b strings.Builder

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := hexColor(img.At(x, y))
			bottom := top
			if y+1 < bounds.Max.Y {
				bottom = hexColor(img.At(x, y+1))
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		if y+2 < bounds.Max.Y {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
