package maglayout

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/foomo/maglayout/vo"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ResolveImages opens all files in baseDir/category, whose names start with
// stem + "_". Handles are returned open and positioned at the start of the file.
// A missing category folder means there are no images.
func ResolveImages(baseDir, category, stem string) (images []*vo.Image, err error) {
	dir := filepath.Join(baseDir, category)
	entries, errRead := os.ReadDir(dir)
	if errors.Is(errRead, fs.ErrNotExist) {
		return []*vo.Image{}, nil
	}
	if errRead != nil {
		return nil, errRead
	}
	prefix := stem + "_"
	images = []*vo.Image{}
	defer func() {
		if err != nil {
			for _, img := range images {
				img.Close()
			}
			images = nil
		}
	}()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		img, errOpen := openImage(filepath.Join(dir, entry.Name()))
		if errOpen != nil {
			return images, errOpen
		}
		images = append(images, img)
	}
	return images, nil
}

func openImage(path string) (*vo.Image, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil, errOpen
	}
	img := &vo.Image{File: f, Path: path}
	// header metadata is optional, unknown formats keep it empty
	if config, format, errConfig := image.DecodeConfig(f); errConfig == nil {
		img.Format = format
		img.Width = config.Width
		img.Height = config.Height
	}
	if _, errSeek := f.Seek(0, io.SeekStart); errSeek != nil {
		f.Close()
		return nil, errSeek
	}
	return img, nil
}
