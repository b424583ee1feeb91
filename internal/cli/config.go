package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/followdiff/followdiff/pkg/errors"
)

// configFile is the optional per-directory configuration file. It supplies
// defaults for the check command; flags override it.
const configFile = appName + ".toml"

// Config holds the optional file-based defaults. All fields are optional.
type Config struct {
	Following string   `toml:"following"`
	Followers string   `toml:"followers"`
	Output    string   `toml:"output"`
	Formats   []string `toml:"formats"`
}

// loadConfig reads the config file at path if it exists.
// A missing file yields a zero Config, not an error.
func loadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInputRead, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse %s", path)
	}
	return cfg, nil
}
