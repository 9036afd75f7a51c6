// Package dataset reads a whole household from a YAML or JSON file, for
// seeding a store with something other than the built-in dataset.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hearth/internal/model"
)

var (
	ErrEmpty       = errors.New("dataset is empty")
	ErrInvalidYAML = errors.New("invalid YAML in dataset")
	ErrNoUsers     = errors.New("dataset has no users")
)

func ParseFile(path string) (*model.AppData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return data, nil
}

// Parse decodes content into an aggregate. Keys use the persisted JSON
// names (calendarEvents, assigneeId, ...). JSON input is accepted as is.
func Parse(content []byte) (*model.AppData, error) {
	trimmed := bytes.TrimLeft(content, "\ufeff\n\r\t ")
	if len(trimmed) == 0 {
		return nil, ErrEmpty
	}

	var raw map[string]any
	if err := yaml.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmpty
	}

	encoded, err := json.Marshal(normalize(raw))
	if err != nil {
		return nil, fmt.Errorf("encoding dataset: %w", err)
	}
	var data model.AppData
	if err := json.Unmarshal(encoded, &data); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if len(data.Users) == 0 {
		return nil, ErrNoUsers
	}
	return &data, nil
}

// normalize turns YAML-decoded values into ones encoding/json accepts:
// maps with non-string keys get string keys and unquoted timestamps go back
// to text.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case time.Time:
		if v.Equal(v.Truncate(24*time.Hour)) && v.Location() == time.UTC {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	default:
		return v
	}
}
