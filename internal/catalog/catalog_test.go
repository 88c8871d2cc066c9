package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestDefaultCatalogOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"frontend", "backend", "database", "tools"}, c.SectionIDs())

	tools, ok := c.Section("tools")
	require.True(t, ok)
	assert.Equal(t, "Additional Tools", tools.Name)
	require.Len(t, tools.Options, 4)
	assert.Equal(t, Option{Value: "docker", Label: "Docker"}, tools.Options[0])
}

func TestLookup(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		section string
		value   string
		label   string
		found   bool
	}{
		{"known option", "frontend", "vue", "Vue.js", true},
		{"multi word label", "backend", "rubyonrails", "Ruby on Rails", true},
		{"option from other section", "frontend", "django", "", false},
		{"unknown section", "mobile", "flutter", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, ok := c.Option(tt.section, tt.value)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.label, opt.Label)
		})
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := Default()

	sections := c.Sections()
	sections[0].Name = "Mutated"
	sections[0].Options[0].Label = "Mutated"

	front, _ := c.Section("frontend")
	front.Options[1].Value = "mutated"

	again, _ := c.Section("frontend")
	assert.Equal(t, "Frontend", again.Name)
	assert.Equal(t, "React", again.Options[0].Label)
	assert.Equal(t, "angular", again.Options[1].Value)
	assert.Equal(t, "Frontend", Default().Sections()[0].Name)
}

func TestYAMLExport(t *testing.T) {
	out, err := Default().YAML()
	require.NoError(t, err)

	var doc document
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, Default().Sections(), doc.Sections)
	assert.True(t, strings.HasPrefix(string(out), "sections:"))
}

func TestWriteYAMLPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().WriteYAML(&buf, false))

	want, err := Default().YAML()
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())
}

func TestWriteYAMLColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().WriteYAML(&buf, true))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "kubernetes")
}

func TestText(t *testing.T) {
	text := Default().Text()
	assert.Contains(t, text, "Frontend (frontend)\n")
	assert.Contains(t, text, "rubyonrails")
	assert.Contains(t, text, "Ruby on Rails")
}
