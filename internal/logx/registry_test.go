package logx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jfk9w-go/flu"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry(t *testing.T) {
	tempdir := t.TempDir()
	t.Setenv("TEMPDIR", tempdir)

	config, err := ReadConfig(flu.File("testdata/config.yaml"))
	require.NoError(t, err)
	obj := newRegistry(config)

	// logger with custom settings
	custom := obj.get("nondefault")

	// this is the same object
	assert.Same(t, custom, obj.get("nondefault"))

	custom.Debug("debug")
	custom.Info("info")
	custom.Warn("warn")
	custom.WithField("attribute", "class").Error("error")

	data, err := os.ReadFile(filepath.Join(tempdir, "logx", "nondefault.log"))
	require.NoError(t, err)
	text := string(data)
	assert.NotContains(t, text, "debug")
	assert.NotContains(t, text, "info")
	assert.Contains(t, text, "WARN  [nondefault] warn\n")
	assert.Contains(t, text, "ERROR [nondefault] error\n")
	assert.Contains(t, text, `attribute: (string) (len=5) "class"`)

	// logger with default settings
	other := obj.get("other")
	assert.Equal(t, logrus.InfoLevel, other.Level)
	assert.Equal(t, "other", other.Formatter.(*format).name)
}

func Test_ReadConfig_Missing(t *testing.T) {
	config, err := ReadConfig(flu.Bytes("tag: div\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, config)
}

func Test_Registry_InvalidLevel(t *testing.T) {
	obj := newRegistry(Config{Default: LoggerConfig{Level: "loud", Output: []string{"stderr"}}})
	assert.Panics(t, func() { obj.get("any") })
}
