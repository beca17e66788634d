package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal renders the effective configuration as YAML under the `rcg:` root
// key, in the same shape Load reads.
func Marshal(cfg *GlobalConfig) ([]byte, error) {
	out, err := yaml.Marshal(configRoot{RCG: *cfg})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
