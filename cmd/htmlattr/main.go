// Command htmlattr renders an HTML start tag from a YAML attribute document.
//
//	htmlattr [-config config.yaml] [-tag div] [-escaper strict] [-text content] doc.yaml
//
// The document has the following shape (use - to read it from stdin):
//
//	attributes:
//	  id: main
//	  class: [a, b]
//	merge:
//	  - class: c
//	  - onclick: [doThing]
//
// Configuration values may be overridden by HTMLATTR_* environment variables.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jfk9w-go/flu"
	"github.com/jfk9w-go/htmlattr/attrs"
	"github.com/jfk9w-go/htmlattr/html"
	"github.com/jfk9w-go/htmlattr/internal/config"
	"github.com/jfk9w-go/htmlattr/internal/logx"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const environPrefix = "HTMLATTR_"

type document struct {
	Attributes yaml.Node   `yaml:"attributes"`
	Merge      []yaml.Node `yaml:"merge"`
}

type options struct {
	config  string
	tag     string
	escaper string
	text    string
	doc     string
}

func main() {
	opts := options{}
	flag.StringVar(&opts.config, "config", "", "configuration file")
	flag.StringVar(&opts.tag, "tag", "", "tag name")
	flag.StringVar(&opts.escaper, "escaper", "", "escaper: strict, html or identity")
	flag.StringVar(&opts.text, "text", "", "tag content, the tag is closed if set")
	flag.Parse()
	opts.doc = flag.Arg(0)

	if err := run(os.Stdin, os.Stdout, opts); err != nil {
		logx.Get("htmlattr").Error(err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer, opts options) error {
	if opts.doc == "" {
		return errors.New("document path is required")
	}

	var inputs []flu.Input
	if opts.config != "" {
		inputs = append(inputs, flu.File(opts.config))
	}

	cfg, err := config.Load(environPrefix, inputs...)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	if cfg.Logx != nil {
		logx.Configure(*cfg.Logx)
	}

	if opts.tag != "" {
		cfg.Tag = opts.tag
	}

	if opts.escaper != "" {
		cfg.Escaper = opts.escaper
	}

	log := logx.Get("htmlattr")
	text, attr, err := cfg.Escapers()
	if err != nil {
		return err
	}

	var in flu.Input = flu.File(opts.doc)
	if opts.doc == "-" {
		in = flu.IO{R: stdin}
	}

	doc := new(document)
	if err := flu.DecodeFrom(in, flu.YAML(doc)); err != nil {
		return errors.Wrapf(err, "read document %s", opts.doc)
	}

	a := attrs.New(text, attr)
	if !doc.Attributes.IsZero() {
		if err := a.MergeFrom(&doc.Attributes); err != nil {
			return errors.Wrap(err, "attributes")
		}
	}

	for i := range doc.Merge {
		if err := a.MergeFrom(&doc.Merge[i]); err != nil {
			return errors.Wrapf(err, "merge #%d", i)
		}
	}

	w := html.NewWriter(text, attr)
	if opts.text != "" {
		w.StartTag(cfg.Tag, a).Text(opts.text).EndTag()
	} else {
		w.VoidTag(cfg.Tag, a)
	}

	markup, err := w.Flush()
	if err != nil {
		return err
	}

	log.WithFields(logx.V{"tag": cfg.Tag, "attributes": a.Names()}).Debug("rendered")
	_, err = fmt.Fprintln(stdout, markup)
	return err
}
