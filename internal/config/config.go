// Package config collects application configuration
// from YAML files and environment variables.
package config

import (
	"github.com/jfk9w-go/flu"
	"github.com/jfk9w-go/htmlattr/escape"
	"github.com/jfk9w-go/htmlattr/internal/logx"
	"github.com/pkg/errors"
)

// Config is the htmlattr command configuration.
type Config struct {

	// Tag is the rendered tag name.
	Tag string `yaml:"tag"`

	// Escaper is one of strict, html and identity.
	Escaper string `yaml:"escaper"`

	// Logx is the logging configuration, see logx.Config.
	Logx *logx.Config `yaml:"logx"`
}

// Default is used for missing values.
var Default = Config{
	Tag:     "div",
	Escaper: "strict",
}

// Load collects the configuration from inputs and the environment.
func Load(environPrefix string, inputs ...flu.Input) (*Config, error) {
	buf, err := Collect(environPrefix, inputs...)
	if err != nil {
		return nil, err
	}

	config := Default
	if err := flu.DecodeFrom(buf, flu.YAML(&config)); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	return &config, nil
}

// Escapers returns the text and attribute value escapers.
func (c *Config) Escapers() (text, attr escape.Func, err error) {
	switch c.Escaper {
	case "strict", "":
		return escape.HTML, escape.HTMLAttr, nil
	case "html":
		return escape.HTML, escape.HTML, nil
	case "identity":
		return escape.Identity, escape.Identity, nil
	default:
		return nil, nil, errors.Errorf("unknown escaper %s", c.Escaper)
	}
}

func log() logx.Ptr {
	return logx.Get("config")
}
