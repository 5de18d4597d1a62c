package pokedex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// StatKeys lists the base stats every roster entry carries.
var StatKeys = []string{"HP", "Attack", "Defense", "Sp. Attack", "Sp. Defense", "Speed"}

// Creature mirrors one entry of the roster document.
type Creature struct {
	ID   int      `json:"id" yaml:"id"`
	Name Name     `json:"name" yaml:"name"`
	Type []string `json:"type" yaml:"type"`
	Base Stats    `json:"base" yaml:"base"`
}

// Name holds the localized display names. English is the one shown and searched.
type Name struct {
	English  string `json:"english" yaml:"english"`
	Japanese string `json:"japanese" yaml:"japanese"`
	Chinese  string `json:"chinese" yaml:"chinese"`
	French   string `json:"french" yaml:"french"`
}

// TypeLabel joins the creature's types for table display.
func (c Creature) TypeLabel() string {
	return strings.Join(c.Type, ", ")
}

// Stat is a single base statistic.
type Stat struct {
	Key   string
	Value int
}

// Stats keeps base statistics in the order they appear in the source document.
type Stats []Stat

// Get returns the value for key.
func (s Stats) Get(key string) (int, bool) {
	for _, stat := range s {
		if stat.Key == key {
			return stat.Value, true
		}
	}
	return 0, false
}

// UnmarshalJSON decodes a JSON object while preserving key order.
func (s *Stats) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode base: %w", err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode base: expected object, got %v", tok)
	}

	var out Stats
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode base: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode base: unexpected key %v", tok)
		}
		var value int
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode base %q: %w", key, err)
		}
		out = append(out, Stat{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode base: %w", err)
	}
	*s = out
	return nil
}

// MarshalJSON encodes the stats as an object in their stored order.
func (s Stats) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, stat := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(stat.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", stat.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML mapping while preserving key order.
func (s *Stats) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("decode base: line %d: expected mapping", value.Line)
	}
	out := make(Stats, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		var v int
		if err := value.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("decode base %q: %w", key, err)
		}
		out = append(out, Stat{Key: key, Value: v})
	}
	*s = out
	return nil
}
