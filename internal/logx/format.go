package logx

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

const (
	red    = 31
	yellow = 33
	green  = 32
	blue   = 36

	defaultTimeFormat = "2006-01-02 15:04:05.000"
	templateColored   = "\x1b[%dm%s\x1b[0m"
)

var (
	spewfmt = &spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
		DisablePointerMethods:   true,
		SortKeys:                true,
	}

	levels = map[logrus.Level]string{
		logrus.PanicLevel: "PANIC",
		logrus.FatalLevel: "FATAL",
		logrus.ErrorLevel: "ERROR",
		logrus.WarnLevel:  "WARN ",
		logrus.InfoLevel:  "INFO ",
		logrus.DebugLevel: "DEBUG",
		logrus.TraceLevel: "TRACE",
	}
)

// format prints `time LEVEL [name] message` followed by spew dumps of fields.
// Colors are used only for terminal outputs.
type format struct {
	name    string
	colored bool
}

func (f *format) Format(entry *logrus.Entry) ([]byte, error) {
	sb := new(strings.Builder)
	sb.WriteString(entry.Time.Format(defaultTimeFormat))
	sb.WriteRune(' ')
	sb.WriteString(f.level(entry.Level))
	sb.WriteString(" [")
	sb.WriteString(f.name)
	sb.WriteString("] ")
	sb.WriteString(entry.Message)
	if last, _ := utf8.DecodeLastRuneInString(entry.Message); last != '\n' {
		sb.WriteRune('\n')
	}

	for _, key := range sortedKeys(entry.Data) {
		sb.WriteString(key)
		sb.WriteString(": ")

		var dumped string
		if err, ok := entry.Data[key].(error); ok {
			dumped = err.Error()
		} else {
			dumped = spewfmt.Sdump(entry.Data[key])
		}

		sb.WriteString(dumped)
		if last, _ := utf8.DecodeLastRuneInString(dumped); last != '\n' {
			sb.WriteRune('\n')
		}
	}

	return []byte(sb.String()), nil
}

func (f *format) level(l logrus.Level) string {
	if !f.colored {
		return levels[l]
	}

	var color int
	switch l {
	case logrus.InfoLevel:
		color = green
	case logrus.WarnLevel:
		color = yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		color = red
	default:
		color = blue
	}

	return fmt.Sprintf(templateColored, color, levels[l])
}

func sortedKeys(fields logrus.Fields) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}
