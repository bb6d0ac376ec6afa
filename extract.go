package maglayout

import (
	"errors"
	"strconv"
	"strings"

	"github.com/foomo/maglayout/vo"
)

const (
	attrLabel    = "label"
	attrPolygonX = "polygon_x"
	attrPolygonY = "polygon_y"
)

var errUnpairedPolygon = errors.New("polygon_x and polygon_y differ in length")

// NewLayoutElement builds a layout element from the attributes of an
// <element> node
func NewLayoutElement(attrs map[string]string) (el vo.LayoutElement, err error) {
	label, okLabel := attrs[attrLabel]
	if !okLabel {
		return el, &ParseError{Field: attrLabel, Err: errors.New("attribute missing")}
	}
	polygonX, errX := parsePolygonAttr(attrs, attrPolygonX)
	if errX != nil {
		return el, errX
	}
	polygonY, errY := parsePolygonAttr(attrs, attrPolygonY)
	if errY != nil {
		return el, errY
	}
	if len(polygonX) != len(polygonY) {
		return el, &ParseError{
			Field: attrPolygonX + "/" + attrPolygonY,
			Err:   errUnpairedPolygon,
		}
	}
	return vo.LayoutElement{
		Label:    label,
		PolygonX: polygonX,
		PolygonY: polygonY,
	}, nil
}

func parsePolygonAttr(attrs map[string]string, name string) ([]float64, error) {
	raw, ok := attrs[name]
	if !ok {
		return nil, &ParseError{Field: name, Err: errors.New("attribute missing")}
	}
	coords, errParse := ParsePolygon(raw)
	if errParse != nil {
		var parseErr *ParseError
		if errors.As(errParse, &parseErr) {
			parseErr.Field = name
		}
		return nil, errParse
	}
	return coords, nil
}

func requireText(root *Node, path ...string) (string, error) {
	n := root.Find(path...)
	if n == nil {
		return "", &MissingFieldError{Path: strings.Join(path, "/")}
	}
	return n.Text, nil
}

func requireInt(root *Node, path ...string) (int, error) {
	text, errText := requireText(root, path...)
	if errText != nil {
		return 0, errText
	}
	v, errAtoi := strconv.Atoi(text)
	if errAtoi != nil {
		return 0, &MissingFieldError{Path: strings.Join(path, "/"), Err: errAtoi}
	}
	if v < 0 {
		return 0, &MissingFieldError{Path: strings.Join(path, "/"), Err: errors.New("must not be negative")}
	}
	return v, nil
}

// ExtractFilename text of <filename>
func ExtractFilename(root *Node) (string, error) {
	return requireText(root, "filename")
}

// ExtractCategory text of <category>
func ExtractCategory(root *Node) (string, error) {
	return requireText(root, "category")
}

// ExtractSize page width and height, both non negative integers
func ExtractSize(root *Node) (size vo.LayoutSize, err error) {
	if root.Find("size") == nil {
		return size, &MissingFieldError{Path: "size"}
	}
	size.Width, err = requireInt(root, "size", "width")
	if err != nil {
		return
	}
	size.Height, err = requireInt(root, "size", "height")
	return
}

// ExtractElements all layout elements in document order, a malformed element
// is reported as *ParseError
func ExtractElements(root *Node) ([]vo.LayoutElement, error) {
	nodes, ok := root.FindAll("element", "layout")
	if !ok {
		return nil, &MissingFieldError{Path: "layout"}
	}
	elements := make([]vo.LayoutElement, 0, len(nodes))
	for _, n := range nodes {
		el, errEl := NewLayoutElement(n.Attr)
		if errEl != nil {
			return nil, errEl
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// ExtractKeywords all <text><keyword> values in document order
func ExtractKeywords(root *Node) ([]string, error) {
	nodes, ok := root.FindAll("keyword", "text")
	if !ok {
		return nil, &MissingFieldError{Path: "text"}
	}
	keywords := make([]string, len(nodes))
	for i, n := range nodes {
		keywords[i] = n.Text
	}
	return keywords, nil
}
