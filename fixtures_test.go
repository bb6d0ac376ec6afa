package maglayout

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const cover01XML = `<?xml version="1.0" encoding="UTF-8"?>
<annotation>
	<filename>cover01</filename>
	<category>fashion</category>
	<size>
		<width>800</width>
		<height>1000</height>
	</size>
	<layout>
		<element label="headline" polygon_x="0 100 100 0" polygon_y="0 0 50 50"/>
	</layout>
	<text>
		<keyword>sale</keyword>
	</text>
</annotation>
`

const brokenPolygonXML = `<annotation>
	<filename>broken</filename>
	<category>news</category>
	<size><width>10</width><height>10</height></size>
	<layout>
		<element label="text" polygon_x="0 a 5" polygon_y="0 1 2"/>
	</layout>
	<text></text>
</annotation>
`

const missingSizeXML = `<annotation>
	<filename>nosize</filename>
	<category>news</category>
	<layout></layout>
	<text></text>
</annotation>
`

type corpus struct {
	t         *testing.T
	layoutDir string
	imageDir  string
}

func newCorpus(t *testing.T) *corpus {
	root := t.TempDir()
	c := &corpus{
		t:         t,
		layoutDir: filepath.Join(root, "layout"),
		imageDir:  filepath.Join(root, "images"),
	}
	require.NoError(t, os.MkdirAll(c.layoutDir, 0o755))
	require.NoError(t, os.MkdirAll(c.imageDir, 0o755))
	return c
}

func (c *corpus) addXML(name, content string) string {
	path := filepath.Join(c.layoutDir, name)
	require.NoError(c.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// addPage a well formed annotation with one image
func (c *corpus) addPage(stem, category string) {
	c.addXML(stem+".xml", pageXML(stem, category))
	c.addPNG(category, stem+"_1.png", 4, 6)
}

func (c *corpus) addFile(category, name string, data []byte) string {
	dir := filepath.Join(c.imageDir, category)
	require.NoError(c.t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(c.t, os.WriteFile(path, data, 0o644))
	return path
}

func (c *corpus) addPNG(category, name string, width, height int) string {
	buf := &bytes.Buffer{}
	require.NoError(c.t, png.Encode(buf, testImage(width, height)))
	return c.addFile(category, name, buf.Bytes())
}

func (c *corpus) addJPEG(category, name string, width, height int) string {
	buf := &bytes.Buffer{}
	require.NoError(c.t, jpeg.Encode(buf, testImage(width, height), nil))
	return c.addFile(category, name, buf.Bytes())
}

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return img
}

func pageXML(stem, category string) string {
	return `<annotation>
	<filename>` + stem + `</filename>
	<category>` + category + `</category>
	<size><width>600</width><height>900</height></size>
	<layout>
		<element label="text" polygon_x="1 2 3" polygon_y="4 5 6"/>
		<element label="image" polygon_x="10.5 20 20 10.5" polygon_y="0 0 30 30"/>
	</layout>
	<text><keyword>` + stem + `</keyword></text>
</annotation>
`
}
