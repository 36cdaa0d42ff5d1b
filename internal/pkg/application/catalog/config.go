package catalog

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

type InstanceConfig struct {
	Name       string             `yaml:"name"`
	Attributes map[string]*string `yaml:"attributes"`
}

type TemplateConfig struct {
	Content string `yaml:"content"`
}

type SchemaConfig struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes"`
	Instances  []InstanceConfig  `yaml:"instances"`
	Templates  []TemplateConfig  `yaml:"templates"`
}

// Config describes the schemas, instances and templates a catalog is seeded
// with at startup.
type Config struct {
	Schemas []SchemaConfig `yaml:"schemas"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}
