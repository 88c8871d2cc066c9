package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"gopkg.in/yaml.v2"
)

type document struct {
	Sections []Section `yaml:"sections"`
}

// YAML encodes the catalog as a YAML document with a top-level "sections" key.
func (c Catalog) YAML() ([]byte, error) {
	out, err := yaml.Marshal(document{Sections: c.sections})
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return out, nil
}

// Text renders a plain listing, one section per block.
func (c Catalog) Text() string {
	var b strings.Builder
	for i, s := range c.sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%s)\n", s.Name, s.ID)
		for _, o := range s.Options {
			fmt.Fprintf(&b, "  - %-12s %s\n", o.Value, o.Label)
		}
	}
	return b.String()
}

// WriteYAML writes the YAML export to w, highlighted for a 256 colour
// terminal when color is set.
func (c Catalog) WriteYAML(w io.Writer, color bool) error {
	out, err := c.YAML()
	if err != nil {
		return err
	}
	if !color {
		_, err = w.Write(out)
		return err
	}
	if err := quick.Highlight(w, string(out), "yaml", "terminal256", "dracula"); err != nil {
		return fmt.Errorf("failed to highlight catalog: %w", err)
	}
	return nil
}
