package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSchema is the YAML shape of a schema file.
//
// Example:
//
//	dotenv: .env
//	propagate: false
//	eager: true
//	fields:
//	  - name: DB_PORT
//	    default: "3306"
//	    rule:
//	      type: int
//	      ge: 1024
//	      le: 65535
//	  - name: DB_HOST
type fileSchema struct {
	DotEnv    string      `yaml:"dotenv"`
	Propagate bool        `yaml:"propagate"`
	Eager     bool        `yaml:"eager"`
	Fields    []fileField `yaml:"fields"`
}

type fileField struct {
	Name    string `yaml:"name"`
	Default any    `yaml:"default"`
	Rule    *Rule  `yaml:"rule"`
}

// LoadFile reads a schema from a YAML file, following the usual loading
// sequence: parse, map to the Schema model, then Check. The returned
// schema is ready to hand to the container factory.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %q: %w", path, err)
	}

	var fs fileSchema
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %q: %w", path, err)
	}

	s := &Schema{
		DotEnvPath:    fs.DotEnv,
		Propagate:     fs.Propagate,
		EagerValidate: fs.Eager,
	}
	for _, f := range fs.Fields {
		s.Fields = append(s.Fields, Field{Name: f.Name, Default: f.Default, Rule: f.Rule})
	}

	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}
