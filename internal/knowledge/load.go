package knowledge

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML dataset from path. Unknown keys are rejected so a
// typo in the file fails startup instead of silently emptying a section.
func LoadFile(path string) (*KnowledgeBase, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base %s: %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) (*KnowledgeBase, error) {
	var d Data
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return New(d)
}
