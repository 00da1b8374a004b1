package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HTML(t *testing.T) {
	assert.Equal(t, `&lt;a href=&#34;x&#34;&gt;&#39;&amp;`, HTML(`<a href="x">'&`))
	assert.Equal(t, "data-id", HTML("data-id"))
}

func Test_HTMLAttr(t *testing.T) {
	assert.Equal(t, "", HTMLAttr(""))
	assert.Equal(t, "a-b_c.d,e09", HTMLAttr("a-b_c.d,e09"))
	assert.Equal(t, "a&#x20;b", HTMLAttr("a b"))
	assert.Equal(t, "&quot;x&quot;&#x20;&amp;&#x20;&lt;y&gt;", HTMLAttr(`"x" & <y>`))
	assert.Equal(t, "&#x27;", HTMLAttr("'"))
	assert.Equal(t, "&#x0A;&#x09;", HTMLAttr("\n\t"))
	assert.Equal(t, "&#xFFFD;&#xFFFD;", HTMLAttr("\x01\x7f"))
	assert.Equal(t, "&#xFFFD;&#xFFFD;&#xA0;", HTMLAttr("\u0085\u009f\u00a0"))
	assert.Equal(t, "&#xE9;&#x20AC;", HTMLAttr("é€"))
	assert.Equal(t, "&#x1F600;", HTMLAttr("😀"))
}

func Test_Identity(t *testing.T) {
	assert.Equal(t, `<"x">`, Identity(`<"x">`))
}
