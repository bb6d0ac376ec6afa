package maglayout

import (
	"errors"
	"fmt"
	"os"

	"github.com/foomo/maglayout/vo"
	"golang.org/x/text/unicode/norm"
)

// Builder assembles layout annotations from annotation files
type Builder struct {
	// ImageDir root with one sub directory per category
	ImageDir string
	// NormalizeKeywords applies unicode NFC to keywords
	NormalizeKeywords bool
}

// Build reads one annotation file. A malformed element block is returned as
// *AnnotationError, every other error means the corpus does not look like
// expected.
func (b *Builder) Build(xmlPath string) (la vo.LayoutAnnotation, err error) {
	f, errOpen := os.Open(xmlPath)
	if errOpen != nil {
		return la, errOpen
	}
	defer f.Close()
	root, errParse := ParseDocument(f)
	if errParse != nil {
		return la, fmt.Errorf("could not parse %s: %w", xmlPath, errParse)
	}

	wrap := func(err error) error {
		return fmt.Errorf("%s: %w", xmlPath, err)
	}

	la.Filename, err = ExtractFilename(root)
	if err != nil {
		return vo.LayoutAnnotation{}, wrap(err)
	}
	la.Category, err = ExtractCategory(root)
	if err != nil {
		return vo.LayoutAnnotation{}, wrap(err)
	}
	la.Size, err = ExtractSize(root)
	if err != nil {
		return vo.LayoutAnnotation{}, wrap(err)
	}

	elements, errElements := ExtractElements(root)
	if errElements != nil {
		var parseErr *ParseError
		if errors.As(errElements, &parseErr) {
			return vo.LayoutAnnotation{}, &AnnotationError{Path: xmlPath, Err: errElements}
		}
		return vo.LayoutAnnotation{}, wrap(errElements)
	}
	la.Elements = elements

	la.Keywords, err = ExtractKeywords(root)
	if err != nil {
		return vo.LayoutAnnotation{}, wrap(err)
	}
	if b.NormalizeKeywords {
		for i, keyword := range la.Keywords {
			la.Keywords[i] = norm.NFC.String(keyword)
		}
	}

	la.Images, err = ResolveImages(b.ImageDir, la.Category, la.Filename)
	if err != nil {
		return vo.LayoutAnnotation{}, wrap(err)
	}
	return la, nil
}
