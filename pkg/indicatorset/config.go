package indicatorset

import (
	"bytes"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/streamta/pkg/indicator"
)

type Config struct {
	Indicators []Settings `json:"indicators" yaml:"indicators" mapstructure:"indicators"`
}

// ParseConfig decodes a YAML document, unknown fields are rejected.
func ParseConfig(content []byte) (*Config, error) {
	var config Config

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return nil, errors.Wrap(err, "unable to parse indicator set config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfig reads the config file with viper, the format follows the file
// extension (yaml, json or toml). Unknown fields are rejected like in
// ParseConfig.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configFile)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
	}

	var config Config
	if err := v.Unmarshal(&config, func(c *mapstructure.DecoderConfig) {
		c.ErrorUnused = true
	}); err != nil {
		return nil, errors.Wrapf(err, "unable to decode config file %s", configFile)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports every invalid entry at once.
func (c *Config) Validate() (err error) {
	if len(c.Indicators) == 0 {
		return errors.Wrap(indicator.ErrInvalidConfiguration, "no indicators defined")
	}

	ids := make(map[string]struct{}, len(c.Indicators))
	for i, settings := range c.Indicators {
		name := settings.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			err = multierr.Append(err, errors.Wrapf(indicator.ErrInvalidConfiguration, "indicator %s: id is required", name))
		} else if _, ok := ids[name]; ok {
			err = multierr.Append(err, errors.Wrapf(indicator.ErrInvalidConfiguration, "indicator %s: duplicated id", name))
		}
		ids[name] = struct{}{}

		if _, buildErr := settings.Indicator(); buildErr != nil {
			err = multierr.Append(err, errors.Wrapf(buildErr, "indicator %s", name))
		}
	}

	return err
}
