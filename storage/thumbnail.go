package storage

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// resizeToWidth scales img down to targetWidth, preserving aspect ratio.
// Images already at or below the target width are returned unchanged; the
// gallery never enlarges a photo past its source resolution.
func resizeToWidth(img image.Image, targetWidth int) image.Image {
	bounds := img.Bounds()
	origW := bounds.Dx()
	origH := bounds.Dy()
	if origW <= targetWidth {
		return img
	}

	scale := float64(targetWidth) / float64(origW)
	newH := int(float64(origH) * scale)
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// createThumbnail decodes the stored original at srcPath, scales it to the
// target width and writes it to dstPath. The encoding follows the decoded
// format where an encoder exists (png, gif); everything else becomes JPEG.
func createThumbnail(srcPath, dstPath string, targetWidth int) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open original: %w", err)
	}
	defer src.Close()

	img, format, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	thumb := resizeToWidth(img, targetWidth)

	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	switch format {
	case "png":
		err = png.Encode(out, thumb)
	case "gif":
		err = gif.Encode(out, thumb, nil)
	default:
		err = jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}
