package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/jfk9w-go/flu"
	"github.com/pkg/errors"
)

// Collect merges YAML inputs in order (environment variables in inputs are expanded)
// and applies the environment variables with the prefix on top.
// PREFIX_LOGX_DEFAULT_LEVEL=debug overrides logx.default.level.
func Collect(environPrefix string, inputs ...flu.Input) (*flu.ByteBuffer, error) {
	global := make(map[string]interface{})
	for _, input := range inputs {
		buf := new(flu.ByteBuffer)
		if _, err := flu.Copy(input, buf); err != nil {
			return nil, errors.Wrapf(err, "read config %s", input)
		}

		config := make(map[string]interface{})
		data := flu.Bytes(os.ExpandEnv(buf.Unmask().String()))
		if err := flu.DecodeFrom(data, flu.YAML(&config)); err != nil {
			return nil, errors.Wrapf(err, "read expanded config %s", input)
		}

		var err error
		if global, err = merge(global, config); err != nil {
			return nil, err
		}
	}

	global, err := merge(global, environ(environPrefix, os.Environ()))
	if err != nil {
		return nil, errors.Wrap(err, "apply environment")
	}

	buf := new(flu.ByteBuffer)
	if err := flu.EncodeTo(flu.YAML(global), buf); err != nil {
		return nil, errors.Wrap(err, "encode global config")
	}

	return buf, nil
}

func environ(prefix string, lines []string) map[string]interface{} {
	m := make(map[string]interface{})
	for _, line := range lines {
		if prefix == "" || !strings.HasPrefix(line, prefix) {
			continue
		}

		line = line[len(prefix):]
		equals := strings.Index(line, "=")
		if equals < 0 {
			continue
		}

		key, value := line[:equals], line[equals+1:]
		keyTokens := strings.Split(key, "_")
		lastIdx := len(keyTokens) - 1
		entry := m
		for i, keyToken := range keyTokens {
			if keyToken == "" {
				break
			}

			keyToken = strings.ToLower(keyToken)
			if i == lastIdx {
				if ev, ok := entry[keyToken]; ok {
					if _, ok := ev.(map[string]interface{}); ok {
						log().Warnf("discarding env var %s due to type incompatibility", key)
						continue
					}
				}

				entry[keyToken] = parseValue(value)
			} else {
				var mev map[string]interface{}
				if ev, ok := entry[keyToken]; ok {
					if mev, ok = ev.(map[string]interface{}); !ok {
						log().Warnf("overriding parent as object for env var %s", key)
						mev = make(map[string]interface{})
						entry[keyToken] = mev
					}
				} else {
					mev = make(map[string]interface{})
					entry[keyToken] = mev
				}

				entry = mev
			}
		}
	}

	return m
}

func parseValue(value string) interface{} {
	if v, err := strconv.ParseInt(value, 10, 64); err == nil {
		return v
	} else if v, err := strconv.ParseFloat(value, 64); err == nil {
		return v
	} else if v, err := strconv.ParseBool(value); err == nil {
		return v
	}

	return value
}

func merge(a, b map[string]interface{}) (map[string]interface{}, error) {
	for k, v := range b {
		if av, ok := a[k]; !ok {
			a[k] = v
			continue
		} else if mav, ok := av.(map[string]interface{}); ok {
			if mv, ok := v.(map[string]interface{}); ok {
				merged, err := merge(mav, mv)
				if err != nil {
					return nil, err
				}

				a[k] = merged
				continue
			}
		} else if _, ok := v.(map[string]interface{}); !ok {
			a[k] = v
			continue
		}

		return nil, errors.Errorf("configuration keys %s must have the same type", k)
	}

	return a, nil
}
