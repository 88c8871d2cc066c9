package catalog

// Option is a single selectable value within a section.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Section is a named group of mutually exclusive options.
type Section struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Options []Option `json:"options" yaml:"options"`
}

// Catalog is the ordered, read-only list of filter sections.
type Catalog struct {
	sections []Section
}

var defaultSections = []Section{
	{
		ID:   "frontend",
		Name: "Frontend",
		Options: []Option{
			{Value: "react", Label: "React"},
			{Value: "angular", Label: "Angular"},
			{Value: "vue", Label: "Vue.js"},
			{Value: "svelte", Label: "Svelte"},
		},
	},
	{
		ID:   "backend",
		Name: "Backend",
		Options: []Option{
			{Value: "nodejs", Label: "Node.js"},
			{Value: "django", Label: "Django"},
			{Value: "rubyonrails", Label: "Ruby on Rails"},
			{Value: "spring", Label: "Spring"},
		},
	},
	{
		ID:   "database",
		Name: "Database",
		Options: []Option{
			{Value: "postgresql", Label: "PostgreSQL"},
			{Value: "mongodb", Label: "MongoDB"},
			{Value: "mysql", Label: "MySQL"},
			{Value: "redis", Label: "Redis"},
		},
	},
	{
		ID:   "tools",
		Name: "Additional Tools",
		Options: []Option{
			{Value: "docker", Label: "Docker"},
			{Value: "kubernetes", Label: "Kubernetes"},
			{Value: "jenkins", Label: "Jenkins"},
			{Value: "webpack", Label: "Webpack"},
		},
	},
}

// Default returns the built-in stack catalog.
func Default() Catalog {
	return Catalog{sections: copySections(defaultSections)}
}

// Sections returns a copy of the sections in display order.
func (c Catalog) Sections() []Section {
	return copySections(c.sections)
}

// SectionIDs returns the section ids in display order.
func (c Catalog) SectionIDs() []string {
	ids := make([]string, 0, len(c.sections))
	for _, s := range c.sections {
		ids = append(ids, s.ID)
	}
	return ids
}

// Section looks up a section by id.
func (c Catalog) Section(id string) (Section, bool) {
	for _, s := range c.sections {
		if s.ID == id {
			return copySection(s), true
		}
	}
	return Section{}, false
}

// Option looks up an option by section id and value.
func (c Catalog) Option(sectionID, value string) (Option, bool) {
	for _, s := range c.sections {
		if s.ID != sectionID {
			continue
		}
		for _, o := range s.Options {
			if o.Value == value {
				return o, true
			}
		}
		return Option{}, false
	}
	return Option{}, false
}

// Len returns the number of sections.
func (c Catalog) Len() int {
	return len(c.sections)
}

func copySections(in []Section) []Section {
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = copySection(s)
	}
	return out
}

func copySection(s Section) Section {
	opts := make([]Option, len(s.Options))
	copy(opts, s.Options)
	s.Options = opts
	return s
}
