package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"kakeibo/internal/core"
)

// categoriesFile is the YAML shape of an optional category override file:
//
//	categories:
//	  - Food
//	  - Transport
type categoriesFile struct {
	Categories []string `yaml:"categories"`
}

// LoadCategories reads the category set from the configured YAML file.
// Without a configured file it returns the built-in defaults. Blank and
// duplicate labels are dropped; the file's order is kept as bucket order.
func LoadCategories(path string) ([]string, error) {
	if path == "" {
		return append([]string(nil), core.DefaultCategories...), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	var f categoriesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse categories file: %w", err)
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("categories file %s defines no categories", path)
	}
	return out, nil
}
