package config

import (
	"testing"

	"github.com/jfk9w-go/flu"
	"github.com/jfk9w-go/htmlattr/escape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	t.Setenv("HTMLATTR_TEST_LOGX_DEFAULT_LEVEL", "debug")
	t.Setenv("HTMLATTR_TEST_ESCAPER", "identity")
	t.Setenv("CUSTOM_OUTPUT", "stdout")

	config, err := Load("HTMLATTR_TEST_",
		flu.Bytes("tag: span\nescaper: html\nlogx:\n  default:\n    level: info\n    output: [stderr]\n"),
		flu.Bytes("logx:\n  custom:\n    attrs:\n      level: warn\n      output: [$CUSTOM_OUTPUT]\n"))
	require.NoError(t, err)

	assert.Equal(t, "span", config.Tag)
	assert.Equal(t, "identity", config.Escaper)
	require.NotNil(t, config.Logx)
	assert.Equal(t, "debug", config.Logx.Default.Level)
	assert.Equal(t, []string{"stderr"}, config.Logx.Default.Output)
	assert.Equal(t, []string{"stdout"}, config.Logx.Custom["attrs"].Output)
}

func Test_Load_Defaults(t *testing.T) {
	config, err := Load("HTMLATTR_MISSING_")
	require.NoError(t, err)
	assert.Equal(t, Default, *config)
	assert.Nil(t, config.Logx)
}

func Test_Load_TypeMismatch(t *testing.T) {
	_, err := Load("", flu.Bytes("tag: {a: 1}\n"), flu.Bytes("tag: div\n"))
	assert.Error(t, err)
}

func Test_Environ(t *testing.T) {
	m := environ("P_", []string{
		"P_A_B=1",
		"P_A_C=x",
		"P_D=true",
		"P_E=1.5",
		"OTHER=1",
	})

	assert.Equal(t, map[string]interface{}{
		"a": map[string]interface{}{"b": int64(1), "c": "x"},
		"d": true,
		"e": 1.5,
	}, m)
}

func Test_Config_Escapers(t *testing.T) {
	text, attr, err := (&Config{Escaper: "identity"}).Escapers()
	require.NoError(t, err)
	assert.Equal(t, "<", text("<"))
	assert.Equal(t, "a b", attr("a b"))

	text, attr, err = (&Config{Escaper: "strict"}).Escapers()
	require.NoError(t, err)
	assert.Equal(t, escape.HTML("<"), text("<"))
	assert.Equal(t, "a&#x20;b", attr("a b"))

	_, _, err = (&Config{Escaper: "xml"}).Escapers()
	assert.Error(t, err)
}
