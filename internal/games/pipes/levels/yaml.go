package levels

import (
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// yamlLevel represents the YAML structure for a level file.
type yamlLevel struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Columns int      `yaml:"columns,omitempty"`
	Source  int      `yaml:"source,omitempty"`
	Par     int      `yaml:"par,omitempty"`
	Seed    int64    `yaml:"seed,omitempty"`
	Rows    []string `yaml:"rows"`
}

// ParseYAML parses a YAML level file. Columns default to the width of the
// first row. The result is not validated.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, Error.New("yaml unmarshal: %w", err)
	}

	columns := yl.Columns
	if columns <= 0 && len(yl.Rows) > 0 {
		columns = utf8.RuneCountInString(yl.Rows[0])
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:      yl.ID,
		Name:    name,
		Columns: columns,
		Source:  yl.Source,
		Par:     yl.Par,
		Seed:    yl.Seed,
		Rows:    yl.Rows,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
