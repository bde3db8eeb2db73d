package tagattrs

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle to the first element of a parsed fragment.
type Element struct {
	Name  string
	Attrs []Attribute // document order, as reported by the parser

	node *html.Node
}

// HTMLNode returns the parsed node when the element came from HTMLParser.
func (e *Element) HTMLNode() *html.Node {
	if e == nil {
		return nil
	}
	return e.node
}

// ElementParser turns markup into a handle for its first element.
// Implementations return a *NoElementError when there is none.
type ElementParser interface {
	ParseElement(markup string) (*Element, error)
}

// ParserFunc adapts a function to ElementParser.
type ParserFunc func(markup string) (*Element, error)

func (f ParserFunc) ParseElement(markup string) (*Element, error) { return f(markup) }

// HTMLParser parses markup as a full text/html document, the way a browser
// does, and selects the first element child of <body>. Attribute names come
// back lowercased and character references in values are decoded.
type HTMLParser struct{}

func (HTMLParser) ParseElement(markup string) (*Element, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, NewParseError(Position{}, "html parse failed", markup, err)
	}
	first := firstElementChild(findBody(doc))
	if first == nil {
		return nil, NewNoElementError("html", markup)
	}

	el := &Element{Name: first.Data, node: first}
	for _, a := range first.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		el.Attrs = append(el.Attrs, Attribute{Name: name, Value: a.Val})
	}
	return el, nil
}

func findBody(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

func firstElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// XMLParser reads markup as XML up to the first start element. Names keep
// their case; prefixed names are reported as prefix:local with no
// namespace resolution.
type XMLParser struct{}

func (XMLParser) ParseElement(markup string) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(markup))
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			return nil, NewNoElementError("xml", markup)
		}
		if err != nil {
			line, col := dec.InputPos()
			return nil, NewParseError(Position{Line: line, Column: col}, fmt.Sprintf("xml parse failed: %v", err), markup, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		el := &Element{Name: qualified(se.Name)}
		for _, a := range se.Attr {
			el.Attrs = append(el.Attrs, Attribute{Name: qualified(a.Name), Value: a.Value})
		}
		return el, nil
	}
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
