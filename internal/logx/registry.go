package logx

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type registry struct {
	config  Config
	loggers *sync.Map
}

func newRegistry(config Config) *registry {
	return &registry{
		config:  config,
		loggers: new(sync.Map),
	}
}

type logger struct {
	Ptr
	sync.Once
}

func (log *logger) init(name string, config LoggerConfig) error {
	log.Ptr = logrus.New()
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return errors.Wrapf(err, "parse level for %s", name)
	}

	log.Level = level
	colored := len(config.Output) > 0
	writers := make([]io.Writer, len(config.Output))
	for i, path := range config.Output {
		switch path {
		case "stdout":
			writers[i] = os.Stdout
			colored = colored && term.IsTerminal(int(os.Stdout.Fd()))

		case "stderr":
			writers[i] = os.Stderr
			colored = colored && term.IsTerminal(int(os.Stderr.Fd()))

		default:
			path = os.ExpandEnv(path)
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, "create parent of %s", path)
			}

			file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
			if err != nil {
				return errors.Wrapf(err, "open %s", path)
			}

			writers[i] = file
			colored = false
		}
	}

	log.Out = io.MultiWriter(writers...)
	log.Formatter = &format{name: name, colored: colored}
	return nil
}

func (obj *registry) get(name string) Ptr {
	entry, _ := obj.loggers.LoadOrStore(name, new(logger))
	def := entry.(*logger)
	def.Do(func() {
		config, ok := obj.config.Custom[name]
		if !ok {
			config = obj.config.Default
		}

		if err := def.init(name, config); err != nil {
			panic(err)
		}
	})

	return def.Ptr
}
