package common

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultDomain              = "gentoo.org"
	DefaultSeats               = 7
	DefaultGPGBinary           = "gpg"
	DefaultPerlBinary          = "perl"
	DefaultScriptsDir          = "gentoo-elections"
	DefaultConfirmationComment = "This is a Votrify election vote confirmation"
	DefaultIdentityCacheSize   = 128
)

// Config holds the knobs shared by `confirm` and `verify`. Every field can
// be set from a yaml file; the command line flags take precedence.
type Config struct {
	// Domain is appended to roster entries without '@'.
	Domain string `yaml:"domain"`
	// Seats is the number of candidates elected.
	Seats int `yaml:"seats"`

	GPGBinary  string `yaml:"gpg"`
	PerlBinary string `yaml:"perl"`
	// ScriptsDir contains `countify` and `Votify.pm`.
	ScriptsDir string `yaml:"scripts"`

	ConfirmationComment string `yaml:"comment"`
	IdentityCacheSize   int    `yaml:"identity-cache-size"`
}

func NewConfig() Config {
	return Config{
		Domain:              DefaultDomain,
		Seats:               DefaultSeats,
		GPGBinary:           DefaultGPGBinary,
		PerlBinary:          DefaultPerlBinary,
		ScriptsDir:          DefaultScriptsDir,
		ConfirmationComment: DefaultConfirmationComment,
		IdentityCacheSize:   DefaultIdentityCacheSize,
	}
}

// LoadConfigFile overlays the yaml file at path on the defaults. Keys
// missing from the file keep their default value.
func LoadConfigFile(path string) (Config, error) {
	conf := NewConfig()

	b, err := ioutil.ReadFile(path)
	if err != nil {
		return conf, errors.Wrap(err, "failed to read config file")
	}

	if err = ParseConfig(b, &conf); err != nil {
		return conf, errors.Wrapf(err, "failed to parse config file %q", path)
	}

	return conf, nil
}

func ParseConfig(b []byte, conf *Config) error {
	return yaml.UnmarshalStrict(b, conf)
}
