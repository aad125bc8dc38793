package erase

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
)

// savePNG writes img to dest through a temporary file in the same folder,
// replacing dest only once the encoded image is fully on disk.
func savePNG(img image.Image, dest string) (err error) {
	destDir, destName := filepath.Split(dest)
	if destDir == "" {
		destDir = "."
	}

	outFile, err := os.CreateTemp(destDir, "."+destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", dest, err)
	}
	tmpName := outFile.Name()
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", tmpName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", tmpName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Chmod(tmpName, 0o644); defErr != nil {
				err = fmt.Errorf("could not set mode of %q: %w", tmpName, defErr)
			} else if defErr := os.Rename(tmpName, dest); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", dest, defErr)
			}
		}
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	enc := png.Encoder{BufferPool: pngPool}
	if err = enc.Encode(outFile, img); err != nil {
		return fmt.Errorf("could not encode PNG destination %q: %w", dest, err)
	}

	canRename = true
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
