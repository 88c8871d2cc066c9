package stack

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phravins/stackgen/internal/catalog"
)

func TestNewSelectionIsEmpty(t *testing.T) {
	s := NewSelection(catalog.Default())

	want := map[string]string{"frontend": "", "backend": "", "database": "", "tools": ""}
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Errorf("initial selection mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, s.Empty())
}

func TestToggleSelectsAndClears(t *testing.T) {
	s := NewSelection(catalog.Default())

	require.True(t, s.Toggle("frontend", "react"))
	assert.Equal(t, "react", s.Selected("frontend"))
	assert.True(t, s.IsDisabled("frontend", "angular"))
	assert.False(t, s.IsDisabled("frontend", "react"))

	require.True(t, s.Toggle("frontend", "react"))
	assert.Equal(t, "", s.Selected("frontend"))
	for _, v := range []string{"react", "angular", "vue", "svelte"} {
		assert.False(t, s.IsDisabled("frontend", v), v)
		assert.False(t, s.IsSelected("frontend", v), v)
	}
}

func TestToggleReplaces(t *testing.T) {
	s := NewSelection(catalog.Default())
	s.Toggle("database", "mysql")
	s.Toggle("database", "redis")

	assert.Equal(t, "redis", s.Selected("database"))
	assert.False(t, s.IsSelected("database", "mysql"))
	assert.True(t, s.IsDisabled("database", "mysql"))
	assert.False(t, s.IsDisabled("database", "redis"))
}

func TestToggleSectionsAreIndependent(t *testing.T) {
	s := NewSelection(catalog.Default())
	s.Toggle("frontend", "vue")
	s.Toggle("backend", "django")

	assert.Equal(t, "vue", s.Selected("frontend"))
	assert.Equal(t, "django", s.Selected("backend"))
	assert.False(t, s.IsDisabled("tools", "docker"))
}

func TestToggleIgnoresUnknown(t *testing.T) {
	tests := []struct {
		name    string
		section string
		value   string
	}{
		{"unknown section", "mobile", "flutter"},
		{"value from another section", "frontend", "django"},
		{"empty value", "frontend", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection(catalog.Default())
			s.Toggle("frontend", "svelte")
			before := s.Values()

			assert.False(t, s.Toggle(tt.section, tt.value))
			if diff := cmp.Diff(before, s.Values()); diff != "" {
				t.Errorf("selection changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestAtMostOnePerSection(t *testing.T) {
	c := catalog.Default()
	s := NewSelection(c)
	sections := c.Sections()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		sec := sections[rng.Intn(len(sections))]
		opt := sec.Options[rng.Intn(len(sec.Options))]
		s.Toggle(sec.ID, opt.Value)

		for _, check := range sections {
			selected, disabled := 0, 0
			for _, o := range check.Options {
				if s.IsSelected(check.ID, o.Value) {
					selected++
				}
				if s.IsDisabled(check.ID, o.Value) {
					disabled++
				}
			}
			require.LessOrEqual(t, selected, 1, "section %s after step %d", check.ID, i)
			if selected == 1 {
				require.Equal(t, len(check.Options)-1, disabled)
			} else {
				require.Zero(t, disabled)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewSelection(catalog.Default())
	s.Toggle("tools", "docker")

	c := s.Clone()
	c.Toggle("tools", "docker")

	assert.Equal(t, "docker", s.Selected("tools"))
	assert.Equal(t, "", c.Selected("tools"))
}

func TestToggleBackToEmpty(t *testing.T) {
	s := NewSelection(catalog.Default())
	s.Toggle("backend", "spring")
	require.False(t, s.Empty())
	s.Toggle("backend", "spring")
	s.Toggle("unknown", "spring")

	assert.True(t, s.Empty())
	_, ok := s.Values()["unknown"]
	assert.False(t, ok)
}
