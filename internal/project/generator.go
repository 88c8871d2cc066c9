package project

import (
	"fmt"
	"strings"

	"github.com/phravins/stackgen/internal/stack"
)

// Component is one entry of a generated tech stack.
type Component struct {
	Icon  string `json:"icon"`
	Role  string `json:"role,omitempty"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// Idea is a generated project idea.
type Idea struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Stack       []Component `json:"stack"`
	Tools       []Component `json:"tools"`
	Closing     string      `json:"closing"`
}

// Guide is the text shown while the user is still customizing.
type Guide struct {
	Title string
	Intro string
	Steps []string
	Outro string
	Note  string
}

// Generate returns the project idea for a selection. The idea is fixed text:
// no part of it is derived from sel.
func Generate(sel stack.Selection) Idea {
	idea := localEats
	idea.Stack = append([]Component(nil), localEats.Stack...)
	idea.Tools = append([]Component(nil), localEats.Tools...)
	return idea
}

// Instructions returns the customization guide.
func Instructions() Guide {
	g := instructions
	g.Steps = append([]string(nil), instructions.Steps...)
	return g
}

// Markdown renders the idea for a markdown renderer.
func (i Idea) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 🚀 Project Idea: \"%s\"\n\n", i.Title)
	b.WriteString("## 📝 Project Description:\n\n")
	b.WriteString(i.Description + "\n\n")
	b.WriteString("## 🔧 Tech Stack:\n\n")
	for _, c := range i.Stack {
		fmt.Fprintf(&b, "### %s %s: %s\n\n%s\n\n", c.Icon, c.Role, c.Name, c.Notes)
	}
	b.WriteString("### 🛠️ Additional Tools:\n\n")
	for _, c := range i.Tools {
		fmt.Fprintf(&b, "#### %s %s:\n\n%s\n\n", c.Icon, c.Name, c.Notes)
	}
	fmt.Fprintf(&b, "*%s*\n", i.Closing)
	return b.String()
}

// Markdown renders the guide for a markdown renderer.
func (g Guide) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", g.Title, g.Intro)
	for n, step := range g.Steps {
		fmt.Fprintf(&b, "%d. %s\n", n+1, step)
	}
	fmt.Fprintf(&b, "\n%s\n\n*%s*\n", g.Outro, g.Note)
	return b.String()
}
