package reports

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/foomo/maglayout/vo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textElement(a atom.Atom, text string, attrs ...string) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func row(cell atom.Atom, values ...string) *html.Node {
	tr := element(atom.Tr)
	for _, v := range values {
		tr.AppendChild(textElement(cell, v))
	}
	return tr
}

func labelSummary(labels map[string]int) string {
	parts := make([]string, 0, len(labels))
	for label, n := range labels {
		parts = append(parts, label+":"+strconv.Itoa(n))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

// RenderHTML renders results and skipped files of a status as html tables
func RenderHTML(w io.Writer, status vo.Status, filter resultFilter) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	doc.AppendChild(root)
	head := element(atom.Head)
	head.AppendChild(textElement(atom.Title, "maglayout "+status.LayoutDir))
	root.AppendChild(head)
	body := element(atom.Body)
	root.AppendChild(body)

	results := filtered(status.Results, filter)
	body.AppendChild(textElement(atom.H1, "results ("+strconv.Itoa(len(results))+")"))
	if !status.Complete() {
		body.AppendChild(textElement(atom.P, "walk aborted: "+status.Error, "class", "error"))
	}
	table := element(atom.Table, "id", "results")
	table.AppendChild(row(atom.Th, "index", "filename", "category", "size", "elements", "labels", "keywords", "images"))
	for _, r := range results {
		tr := row(atom.Td,
			strconv.Itoa(r.Index),
			r.Filename,
			r.Category,
			strconv.Itoa(r.Size.Width)+"x"+strconv.Itoa(r.Size.Height),
			strconv.Itoa(r.Elements),
			labelSummary(r.Labels),
			strings.Join(r.Keywords, ", "),
			strconv.Itoa(len(r.Images)),
		)
		tr.Attr = append(tr.Attr, html.Attribute{Key: "data-category", Val: r.Category})
		table.AppendChild(tr)
	}
	body.AppendChild(table)

	body.AppendChild(textElement(atom.H2, "skipped ("+strconv.Itoa(len(status.Skipped))+")"))
	skipped := element(atom.Table, "id", "skipped")
	skipped.AppendChild(row(atom.Th, "position", "file", "reason"))
	for _, s := range status.Skipped {
		skipped.AppendChild(row(atom.Td, strconv.Itoa(s.Position), s.File, s.Reason))
	}
	body.AppendChild(skipped)
	return html.Render(w, doc)
}
