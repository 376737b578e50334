package config

import (
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/dapplink-baas/connex-provider/provider"
)

const DefaultProvider = "connex"

type Contract struct {
	Name     string `yaml:"name"`
	Provider string `yaml:"provider"`
	// Import is the path of the contract import descriptor, relative to the
	// config file unless absolute.
	Import string `yaml:"import"`
}

type Config struct {
	ChainTag       string     `yaml:"chain_tag"`
	DefaultAccount string     `yaml:"default_account"`
	Contracts      []Contract `yaml:"contracts"`
}

func New(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("read config fail", "path", path, "err", err)
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	var conf Config
	if err := yaml.UnmarshalStrict(data, &conf); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	dir := filepath.Dir(path)
	for i := range conf.Contracts {
		c := &conf.Contracts[i]
		if c.Provider == "" {
			c.Provider = DefaultProvider
		}
		if c.Import != "" && !filepath.IsAbs(c.Import) {
			c.Import = filepath.Join(dir, c.Import)
		}
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) Validate() error {
	if c.ChainTag == "" {
		return errors.New("chain_tag is required")
	}
	if c.DefaultAccount == "" {
		return errors.New("default_account is required")
	}
	seen := make(map[string]bool, len(c.Contracts))
	for i, ct := range c.Contracts {
		if ct.Name == "" {
			return errors.Errorf("contracts[%d]: name is required", i)
		}
		if seen[ct.Name] {
			return errors.Errorf("contracts[%d]: duplicate name %s", i, ct.Name)
		}
		seen[ct.Name] = true
		if ct.Import == "" {
			return errors.Errorf("contract %s: import is required", ct.Name)
		}
	}
	return nil
}

func (c *Config) InstanceOptions() provider.InstanceOptions {
	return provider.InstanceOptions{
		ChainTag:       c.ChainTag,
		DefaultAccount: c.DefaultAccount,
	}
}
