package pronounce

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLexicon reads a pronunciation dictionary from a YAML file mapping
// written words to their spoken replacements:
//
//	Zilog: ZY-log
//	SQL: sequel
func LoadLexicon(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon %s: %w", path, err)
	}

	mapping := map[string]string{}
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon %s: %w", path, err)
	}
	return mapping, nil
}
