package maglayout

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Node an element of a parsed annotation document
type Node struct {
	Name     string
	Attr     map[string]string
	Text     string
	Children []*Node
}

// ParseDocument reads a complete xml document and returns its root element
func ParseDocument(r io.Reader) (root *Node, err error) {
	decoder := xml.NewDecoder(r)
	stack := []*Node{}
	text := []*strings.Builder{}
	for {
		token, errToken := decoder.Token()
		if errToken == io.EOF {
			break
		}
		if errToken != nil {
			return nil, errToken
		}
		switch t := token.(type) {
		case xml.StartElement:
			n := &Node{
				Name: t.Name.Local,
				Attr: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				n.Attr[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}
		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = strings.TrimSpace(text[len(text)-1].String())
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}
	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}

// Child first direct child with the given name
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find follows a path of child names like "size", "width"
func (n *Node) Find(path ...string) *Node {
	current := n
	for _, name := range path {
		current = current.Child(name)
		if current == nil {
			return nil
		}
	}
	return current
}

// FindAll all children with the given name below the parent path
func (n *Node) FindAll(name string, parentPath ...string) (nodes []*Node, parentFound bool) {
	parent := n.Find(parentPath...)
	if parent == nil {
		return nil, false
	}
	nodes = []*Node{}
	for _, c := range parent.Children {
		if c.Name == name {
			nodes = append(nodes, c)
		}
	}
	return nodes, true
}
