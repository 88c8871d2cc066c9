package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpMinWidth = 20

// GeneratorHelp is the help screen shown on '?'.
const GeneratorHelp = `
          PROJECT GENERATOR - Help & Usage Guide


OVERVIEW
Pick one technology per section and generate a project idea.
Each section allows a single choice: once an option is picked, the
other options in that section are disabled until you un-pick it.

KEYBOARD SHORTCUTS
Key           Description

?             Show this help
Tab           Switch between the filter form and the content panel
Up/Down, k/j  Move the cursor
Enter/Space   Toggle the option or expand/collapse the section
/             Jump to an option by name (fuzzy match)
g             Generate Project
b             Back to Customization
f             Open the filter panel (narrow terminals)
Esc / x       Close the filter panel
q, Ctrl+C     Quit

NARROW TERMINALS
Below the configured breakpoint the side form is hidden and the
filter panel slides in from the right on 'f'. Click outside the
panel to dismiss it. The panel is a preview of the filters only:
its checkboxes do not change your stack.

Press Esc to close this help`

// renderHelp lays GeneratorHelp out for a terminal width columns wide, with
// the all-caps headings in bold.
func renderHelp(width int) string {
	lines := strings.Split(GeneratorHelp, "\n")
	for i, line := range lines {
		if isHelpHeading(line) {
			lines[i] = sectionHeaderStyle.Render(line)
		}
	}
	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(max(width-4, helpMinWidth)).
		Render(strings.Join(lines, "\n"))
}

func isHelpHeading(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && line == strings.ToUpper(line) && strings.ToLower(line) != line
}
