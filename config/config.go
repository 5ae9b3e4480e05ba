package config

import (
	"bytes"
	"os"

	"github.com/adrianliechti/mysearch/pkg/searcher"

	"gopkg.in/yaml.v3"
)

const DefaultAddress = ":2772"

type Config struct {
	Address string

	CORS *CORS

	searcher searcher.Provider
}

type CORS struct {
	Origins []string
}

// Parse reads the configuration file at path. An empty path yields the
// defaults: a GitHub issue searcher listening on DefaultAddress.
func Parse(path string) (*Config, error) {
	file := &configFile{}

	if path != "" {
		f, err := parseFile(path)

		if err != nil {
			return nil, err
		}

		file = f
	}

	c := &Config{
		Address: DefaultAddress,
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if file.CORS != nil {
		c.CORS = &CORS{
			Origins: file.CORS.Origins,
		}
	}

	if err := c.registerSearcher(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Searcher *searcherConfig `yaml:"searcher"`

	CORS *corsConfig `yaml:"cors"`
}

type corsConfig struct {
	Origins []string `yaml:"origins"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
