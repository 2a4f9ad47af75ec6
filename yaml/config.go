// Package yaml loads enrzones.Config from YAML files.
//
// Values in the file overlay enrzones.DefaultConfig: scalars and lists
// replace the defaults, while the sections and source_types tables merge
// into them key by key.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/enrzones"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the configuration file at path.
func LoadConfig(path string) (*enrzones.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, enrzones.Errorf(enrzones.ENOTFOUND, "config file %s not found", path)
		}
		return nil, err
	}
	defer f.Close()

	return ParseConfig(f)
}

// ParseConfig decodes YAML from r over the default configuration and
// validates the result. Unknown keys are rejected.
func ParseConfig(r io.Reader) (*enrzones.Config, error) {
	cfg := enrzones.DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, enrzones.Errorf(enrzones.ECONFIG, "parse config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML, e.g. to print the defaults.
func MarshalConfig(cfg *enrzones.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
