package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadRecords reads a feed file holding an array of records. The
// format is taken from the flag when given, otherwise inferred from
// the file extension; anything that is not YAML is treated as JSON.
func loadRecords(path, format string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	var records []map[string]any
	switch format {
	case "json":
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("invalid JSON feed: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("invalid YAML feed: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported feed format: %q", format)
	}

	return records, nil
}
