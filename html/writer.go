// Package html builds HTML markup with start tag attributes kept in attrs.Attributes.
package html

import (
	"strings"

	"github.com/jfk9w-go/htmlattr/attrs"
	"github.com/jfk9w-go/htmlattr/escape"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// RewriteFunc is called for every start tag read by Writer.Parse
// before the tag is written.
type RewriteFunc func(tag string, a *attrs.Attributes)

// Writer writes HTML markup. The first error stops all subsequent writes
// and is returned from Flush.
type Writer struct {
	Rewrite RewriteFunc

	builder strings.Builder
	text    escape.Func
	attr    escape.Func
	tag     *tag
	err     error
}

// NewWriter creates a Writer. text is used for tag names and text content,
// attr is used for attribute values. Nil escapers fall back to
// escape.HTML and escape.HTMLAttr.
func NewWriter(text, attr escape.Func) *Writer {
	if text == nil {
		text = escape.HTML
	}

	if attr == nil {
		attr = escape.HTMLAttr
	}

	return &Writer{
		text: text,
		attr: attr,
	}
}

// Attributes creates attributes sharing the writer escapers.
func (w *Writer) Attributes(pairs ...attrs.Pair) *attrs.Attributes {
	return attrs.New(w.text, w.attr, pairs...)
}

func (w *Writer) writeStartTag(name string, a *attrs.Attributes) bool {
	var rendered string
	if a != nil {
		var err error
		if rendered, err = a.Render(); err != nil {
			w.err = errors.Wrapf(err, "render <%s>", name)
			return false
		}
	}

	w.builder.WriteString("<" + w.text(name) + rendered + ">")
	return true
}

func (w *Writer) StartTag(name string, a *attrs.Attributes) *Writer {
	if w.err != nil {
		return w
	}

	if isVoid(name) {
		return w.VoidTag(name, a)
	}

	if w.writeStartTag(name, a) {
		w.tag = &tag{name: w.text(name), parent: w.tag}
	}

	return w
}

// VoidTag writes a start tag which is never closed.
func (w *Writer) VoidTag(name string, a *attrs.Attributes) *Writer {
	if w.err != nil {
		return w
	}

	w.writeStartTag(name, a)
	return w
}

// EndTag closes the last open tag.
func (w *Writer) EndTag() *Writer {
	if w.err != nil || w.tag == nil {
		return w
	}

	w.builder.WriteString(w.tag.end())
	w.tag = w.tag.parent
	return w
}

func (w *Writer) Tag(name string, pairs ...attrs.Pair) *Writer {
	return w.StartTag(name, w.Attributes(pairs...))
}

func (w *Writer) Text(text string) *Writer {
	if w.err != nil {
		return w
	}

	w.builder.WriteString(w.text(text))
	return w
}

func (w *Writer) Link(text, href string) *Writer {
	return w.Tag("a", attrs.Pair{Name: "href", Value: href}).
		Text(text).
		EndTag()
}

// Parse writes the markup token by token. Start tag attributes are collected
// into attrs.Attributes (the first of duplicate attributes wins)
// and passed through Rewrite.
func (w *Writer) Parse(markup string) *Writer {
	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	for {
		if w.err != nil {
			return w
		}

		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			return w
		}

		token := tokenizer.Token()
		switch token.Type {
		case html.TextToken:
			w.Text(token.Data)
		case html.StartTagToken, html.SelfClosingTagToken:
			a := w.Attributes()
			for _, attr := range token.Attr {
				if !a.Has(attr.Key) {
					a.Set(attr.Key, attr.Val)
				}
			}

			if w.Rewrite != nil {
				w.Rewrite(token.Data, a)
			}

			if token.Type == html.SelfClosingTagToken {
				w.VoidTag(token.Data, a)
			} else {
				w.StartTag(token.Data, a)
			}
		case html.EndTagToken:
			w.EndTag()
		default:
			w.builder.WriteString(token.String())
		}
	}
}

// Flush closes all open tags and returns the markup.
func (w *Writer) Flush() (string, error) {
	if w.err != nil {
		return "", w.err
	}

	for w.tag != nil {
		w.EndTag()
	}

	return w.builder.String(), nil
}
