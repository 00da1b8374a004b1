package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jfk9w-go/htmlattr/attrs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `
attributes:
  id: x
  class: a
merge:
  - class: [b, c]
  - onclick: [go]
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func Test_Run(t *testing.T) {
	stdout := new(bytes.Buffer)
	err := run(nil, stdout, options{
		config: writeFile(t, "config.yaml", "tag: button\nescaper: identity\n"),
		doc:    writeFile(t, "doc.yaml", doc),
	})

	require.NoError(t, err)
	assert.Equal(t, "<button id=\"x\" class=\"a b c\" onclick='[\"go\"]'>\n", stdout.String())
}

func Test_Run_StdinAndFlags(t *testing.T) {
	stdout := new(bytes.Buffer)
	err := run(strings.NewReader(doc), stdout, options{
		tag:  "span",
		text: "a < b",
		doc:  "-",
	})

	require.NoError(t, err)
	assert.Equal(t,
		`<span id="x" class="a&#x20;b&#x20;c" onclick="&#x5B;&quot;go&quot;&#x5D;">a &lt; b</span>`+"\n",
		stdout.String())
}

func Test_Run_InvalidMerge(t *testing.T) {
	err := run(strings.NewReader("merge:\n  - [a, b]\n"), new(bytes.Buffer), options{doc: "-"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, attrs.ErrInvalidArgument))
}

func Test_Run_UnknownEscaper(t *testing.T) {
	err := run(strings.NewReader(doc), new(bytes.Buffer), options{doc: "-", escaper: "xml"})
	assert.Error(t, err)
}

func Test_Run_MappingValue(t *testing.T) {
	stdout := new(bytes.Buffer)
	err := run(strings.NewReader("attributes:\n  class: {b: y, a: x}\n"), stdout, options{doc: "-", escaper: "identity"})
	require.NoError(t, err)
	assert.Equal(t, "<div class=\"x y\">\n", stdout.String())
}
