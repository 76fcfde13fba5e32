package internal

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Default settings.
const (
	DefaultMaxDepth = 10000
	DefaultPrompt   = "? "
)

// Config holds the settings of a VM. The zero value is usable, but it has no
// depth limit and an empty prompt; DefaultConfig is usually preferable.
type Config struct {
	// Encoding names the character encoding of program sources. See
	// DecodeSource.
	Encoding string `yaml:"encoding"`
	// Trace enables invocation tracing to standard error.
	Trace bool `yaml:"trace"`
	// MaxDepth limits nested invocations. Zero or less means no limit.
	MaxDepth int `yaml:"maxDepth"`
	// Prompt is the default prompt for ACCEPT.
	Prompt string `yaml:"prompt"`
	// Disable lists standard procedures to leave out of the VM.
	Disable []string `yaml:"disable"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth, Prompt: DefaultPrompt}
}

// ParseConfig reads YAML settings over the defaults. Unknown keys and
// unknown encodings are configuration errors.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, NewErrorf(ConfigError, "%v", err)
	}
	if !KnownEncoding(cfg.Encoding) {
		return Config{}, NewErrorf(ConfigError, "unknown encoding %q", cfg.Encoding)
	}
	return cfg, nil
}

// LoadConfig reads settings from a YAML file. If the file does not exist and
// optional is true, the defaults are returned.
func LoadConfig(path string, optional bool) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("efecta: reading config: %w", err)
	}
	return ParseConfig(data)
}

// disabled returns whether name is listed in the Disable setting.
func (c Config) disabled(name string) bool {
	for _, d := range c.Disable {
		if d == name {
			return true
		}
	}
	return false
}
