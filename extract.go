package tagattrs

import (
	"fmt"
	"log/slog"
)

// Extraction is the result of Extract: the element handle and a copy of its
// attributes.
type Extraction struct {
	Node  *Element
	Attrs *Attributes
}

// Extractor pulls the attributes off the first element of a markup
// fragment. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	parser ElementParser
	logger *slog.Logger
}

func NewExtractor(opts ...func(*Extractor)) *Extractor {
	e := &Extractor{parser: HTMLParser{}, logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(e)
	}
	return e
}

// WithParser replaces the default HTMLParser. A nil parser is ignored.
func WithParser(p ElementParser) func(*Extractor) {
	return func(e *Extractor) {
		if p != nil {
			e.parser = p
		}
	}
}

func WithLogger(l *slog.Logger) func(*Extractor) {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

var defaultExtractor = NewExtractor()

// Extract parses markup as HTML and returns its first element with the
// element's attributes, values verbatim and in document order.
//
//	res, err := Extract(`<card msg="hello"/>`)
//	// res.Attrs: msg="hello"
func Extract(markup string) (*Extraction, error) {
	return defaultExtractor.Extract(markup)
}

// Extract returns a *NoElementError when markup holds no element; other
// parser failures are passed through.
func (e *Extractor) Extract(markup string) (*Extraction, error) {
	el, err := e.parser.ParseElement(markup)
	if err != nil {
		e.logger.Debug("extract attributes", "parser", fmt.Sprintf("%T", e.parser), "error", err)
		return nil, err
	}
	if el == nil {
		err := NewNoElementError(fmt.Sprintf("%T", e.parser), markup)
		e.logger.Debug("extract attributes", "parser", fmt.Sprintf("%T", e.parser), "error", err)
		return nil, err
	}

	attrs := &Attributes{}
	for _, a := range el.Attrs {
		// first occurrence wins, as in a DOM
		if attrs.Has(a.Name) {
			continue
		}
		attrs.Set(a.Name, a.Value)
	}
	return &Extraction{Node: el, Attrs: attrs}, nil
}
