package vo

import (
	"errors"
	"os"
)

type Label string

const (
	LabelText              Label = "text"
	LabelImage             Label = "image"
	LabelHeadline          Label = "headline"
	LabelTextOverImage     Label = "text-over-image"
	LabelHeadlineOverImage Label = "headline-over-image"
)

// Labels all labels a layout element is expected to carry
var Labels = []Label{
	LabelText,
	LabelImage,
	LabelHeadline,
	LabelTextOverImage,
	LabelHeadlineOverImage,
}

type Category string

const (
	CategoryFashion Category = "fashion"
	CategoryFood    Category = "food"
	CategoryNews    Category = "news"
	CategoryScience Category = "science"
	CategoryTravel  Category = "travel"
	CategoryWedding Category = "wedding"
)

// Categories all magazine genres, also the names of the image sub directories
var Categories = []Category{
	CategoryFashion,
	CategoryFood,
	CategoryNews,
	CategoryScience,
	CategoryTravel,
	CategoryWedding,
}

func IsKnownLabel(label string) bool {
	for _, l := range Labels {
		if string(l) == label {
			return true
		}
	}
	return false
}

func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if string(c) == category {
			return true
		}
	}
	return false
}

// LayoutSize page dimensions in pixels
type LayoutSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LayoutElement one labeled polygon on a page, PolygonX and PolygonY are paired
type LayoutElement struct {
	Label    string    `yaml:"label"`
	PolygonX []float64 `yaml:"polygon_x,flow"`
	PolygonY []float64 `yaml:"polygon_y,flow"`
}

// Image an opened page image, the consumer has to close it
type Image struct {
	*os.File `yaml:"-"`
	Path     string `yaml:"path"`
	Format   string `yaml:"format"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

// LayoutAnnotation everything known about one annotated magazine page
type LayoutAnnotation struct {
	Filename string          `yaml:"filename"`
	Category string          `yaml:"category"`
	Size     LayoutSize      `yaml:"size"`
	Elements []LayoutElement `yaml:"elements"`
	Keywords []string        `yaml:"keywords"`
	Images   []*Image        `yaml:"images"`
}

// Close closes all image handles of the annotation
func (la LayoutAnnotation) Close() error {
	errs := []error{}
	for _, img := range la.Images {
		if img == nil || img.File == nil {
			continue
		}
		if errClose := img.File.Close(); errClose != nil && !errors.Is(errClose, os.ErrClosed) {
			errs = append(errs, errClose)
		}
	}
	return errors.Join(errs...)
}

// Example an annotation together with its position in a walk
type Example struct {
	Index      int
	File       string
	Annotation LayoutAnnotation
}
