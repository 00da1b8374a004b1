// Package logx contains a wrapper for github.com/sirupsen/logrus library.
// Loggers are obtained by name and configured per name.
//
// Configuration
//
// Configuration file is passed via the environment variable LOGX
// (a YAML document with the logx section) or set explicitly with Configure.
// If neither is done all logging output is printed to stderr
// with info level.
package logx

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type (
	// Alias *logrus.Logger
	Ptr = *logrus.Logger

	// Alias logrus.Fields
	V = logrus.Fields
)

var (
	mu  sync.Mutex
	obj *registry
)

func std() *registry {
	mu.Lock()
	defer mu.Unlock()
	if obj == nil {
		obj = newRegistry(config())
	}

	return obj
}

// Get a logger with the specified name.
func Get(name string) Ptr {
	return std().get(name)
}

// Configure replaces the configuration. Loggers obtained before
// keep their settings.
func Configure(config Config) {
	mu.Lock()
	defer mu.Unlock()
	obj = newRegistry(config)
}
