package erase

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	"dotwipe/circle"
	"dotwipe/parallel"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

const savedMessage = "Saved hand-only image to %s\n"

// Eraser clears the heuristic dot region of an image file and writes the
// result as PNG.
type Eraser struct {
	// Workers is the number of goroutines scanning the pixel buffer. Zero
	// means one per CPU, one scans on the calling goroutine.
	Workers int
	// Stdout receives the confirmation line. Nil discards it.
	Stdout io.Writer
}

// EraseDot reads inputPath, erases the dot and saves the PNG to outputPath,
// printing a confirmation to standard output.
func EraseDot(inputPath, outputPath string) error {
	e := Eraser{Workers: 1, Stdout: os.Stdout}
	return e.Erase(inputPath, outputPath)
}

func (e *Eraser) Erase(inputPath, outputPath string) error {
	logger := slog.Default().With("file", inputPath)

	img, imgType, err := load(inputPath)
	if err != nil {
		return err
	}

	dot := circle.Locate(img.Rect.Dx(), img.Rect.Dy())
	logger.Debug("erasing dot", "format", imgType, "width", img.Rect.Dx(), "height", img.Rect.Dy(),
		"cx", dot.CX, "cy", dot.CY, "radius", dot.Radius)

	pool := parallel.Start(e.Workers)
	cleared := circle.Erase(img, dot, pool)
	pool.Wait(true)
	logger.Debug("dot erased", "pixels", cleared, "workers", pool.Size())

	if err = savePNG(img, outputPath); err != nil {
		return err
	}
	logger.Info("saved", "to", outputPath, "pixels", cleared)

	if e.Stdout != nil {
		if _, err = fmt.Fprintf(e.Stdout, savedMessage, outputPath); err != nil {
			return fmt.Errorf("could not write confirmation: %w", err)
		}
	}
	return nil
}

// Locate returns the region Erase would clear for inputPath, reading only
// the image header.
func Locate(inputPath string) (circle.Circle, image.Config, error) {
	imgFile, err := os.Open(inputPath)
	if err != nil {
		return circle.Circle{}, image.Config{}, fmt.Errorf("could not open image %q: %w", inputPath, err)
	}
	defer closeInput(imgFile)

	imgConf, _, err := image.DecodeConfig(imgFile)
	if err != nil {
		return circle.Circle{}, image.Config{}, fmt.Errorf("could not read image %q: %w", inputPath, err)
	}
	return circle.Locate(imgConf.Width, imgConf.Height), imgConf, nil
}

// load decodes name into a non-premultiplied RGBA buffer with its origin at
// (0, 0). Sources without alpha come out fully opaque.
func load(name string) (*image.NRGBA, string, error) {
	imgFile, err := os.Open(name)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", name, err)
	}
	defer closeInput(imgFile)

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", name, err)
	}

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba, imgType, nil
	}
	return imaging.Clone(img), imgType, nil
}

func closeInput(f *os.File) {
	if err := f.Close(); err != nil {
		slog.Error("could not close image", "file", f.Name(), "error", err)
	}
}
