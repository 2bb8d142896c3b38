package export

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Picture places an image file at (left, top) scaled to height, keeping its
// aspect ratio. A missing or unreadable image is skipped; the return value
// reports whether the picture was placed.
func (c *Canvas) Picture(path string, left, top, height float64) bool {
	data, mime, w, h, err := loadPicture(path)
	if err != nil {
		c.log.Logf("[PICTURE] slide %d: skipped %s: %v", c.index+1, path, err)
		return false
	}

	width := height * float64(w) / float64(h)
	// the design grid is not square once mapped, keep the image undistorted
	// on the output page
	width = width * c.grid.scaleY() / c.grid.scaleX()

	img := c.slide.CreateDrawingShape()
	img.SetImageData(data, mime)
	img.SetOffsetX(c.grid.X(left)).SetOffsetY(c.grid.Y(top))
	img.SetWidth(c.grid.X(width)).SetHeight(c.grid.Y(height))
	c.log.Logf("[PICTURE] slide %d: placed %s (%dx%d)", c.index+1, path, w, h)
	return true
}

// loadPicture reads an image and returns bytes the writer can embed.
// Formats other than PNG and JPEG are re-encoded as PNG.
func loadPicture(path string) ([]byte, string, int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", 0, 0, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, "", 0, 0, fmt.Errorf("empty image %dx%d", cfg.Width, cfg.Height)
	}

	switch format {
	case "png":
		return data, "image/png", cfg.Width, cfg.Height, nil
	case "jpeg":
		return data, "image/jpeg", cfg.Width, cfg.Height, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("decode %s image: %w", format, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", 0, 0, fmt.Errorf("re-encode %s image: %w", format, err)
	}
	return buf.Bytes(), "image/png", cfg.Width, cfg.Height, nil
}
