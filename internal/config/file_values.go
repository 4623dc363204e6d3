package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileValues holds settings read from a YAML config file, keyed by the same
// names as the environment variables.
type fileValues map[string]string

// lookup resolves name from the environment first, then the file, then defaultValue.
func (f fileValues) lookup(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	if value, ok := f[name]; ok && value != "" {
		return value
	}
	return defaultValue
}

func readFileValues(path string) (fileValues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[config Load] read %s: %w", path, err)
	}

	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("[config Load] parse %s: %w", path, err)
	}

	values := make(fileValues, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		switch tv := v.(type) {
		case []interface{}:
			var joined string
			for i, item := range tv {
				if i > 0 {
					joined += ","
				}
				joined += fmt.Sprint(item)
			}
			values[k] = joined
		default:
			values[k] = fmt.Sprint(tv)
		}
	}
	return values, nil
}
