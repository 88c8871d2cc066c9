package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/phravins/stackgen/internal/catalog"
	"github.com/phravins/stackgen/internal/project"
	"github.com/phravins/stackgen/internal/stack"
)

type pane int

const (
	paneForm pane = iota
	paneContent
)

const (
	formWidth     = 30
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a GeneratorModel.
type Options struct {
	Catalog          catalog.Catalog
	MobileBreakpoint int
	DrawerTransition time.Duration
	GlamourStyle     string
	Logger           *zap.Logger
}

// GeneratorModel is the project generator screen: the filter form, the
// customize/generated content card and the narrow-screen filter drawer.
type GeneratorModel struct {
	catalog   catalog.Catalog
	selection stack.Selection
	view      stack.View
	drawer    stack.Drawer
	anim      drawerAnim

	form       filterForm
	mobileForm filterForm
	mobile     mobileChecks

	focus     pane
	jumping   bool
	jumpQuery string
	showHelp  bool

	content  viewport.Model
	helpView viewport.Model

	breakpoint   int
	glamourStyle string
	width        int
	height       int
	logger       *zap.Logger
	quitting     bool
}

func NewGeneratorModel(opts Options) GeneratorModel {
	if opts.Catalog.Len() == 0 {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.GlamourStyle == "" {
		opts.GlamourStyle = "dark"
	}

	m := GeneratorModel{
		catalog:      opts.Catalog,
		selection:    stack.NewSelection(opts.Catalog),
		anim:         newDrawerAnim(opts.DrawerTransition),
		form:         newFilterForm(opts.Catalog),
		mobileForm:   newFilterForm(opts.Catalog),
		mobile:       newMobileChecks(opts.Catalog),
		content:      viewport.New(0, 0),
		helpView:     viewport.New(0, 0),
		breakpoint:   opts.MobileBreakpoint,
		glamourStyle: opts.GlamourStyle,
		width:        defaultWidth,
		height:       defaultHeight,
		logger:       opts.Logger,
	}
	m.resize()
	return m
}

func (m GeneratorModel) Init() tea.Cmd {
	return nil
}

// Selection returns a copy of the current selection.
func (m GeneratorModel) Selection() stack.Selection { return m.selection.Clone() }

// ViewState reports whether the content card shows the guide or the idea.
func (m GeneratorModel) ViewState() stack.View { return m.view }

// DrawerState reports whether the filter drawer is open.
func (m GeneratorModel) DrawerState() stack.Drawer { return m.drawer }

func (m GeneratorModel) narrow() bool {
	return m.width < m.breakpoint
}

func (m GeneratorModel) drawerShown() bool {
	return m.narrow() && m.anim.visible()
}

func (m GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case drawerFrameMsg:
		cmd := m.anim.step(m.drawer.IsOpen())
		return m, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.drawer.IsOpen() && m.drawerShown() && msg.X < m.width-drawerWidth(m.width) {
			return m, m.closeDrawer("backdrop")
		}
		if !m.showHelp && m.view == stack.Generated {
			var cmd tea.Cmd
			m.content, cmd = m.content.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch {
		case m.showHelp:
			return m.updateHelp(msg)
		case m.drawer.IsOpen() && m.narrow():
			return m.updateDrawer(msg)
		case m.jumping:
			return m.updateJump(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

func (m GeneratorModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?", "enter":
		m.showHelp = false
		return m, nil
	}
	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return m, cmd
}

func (m GeneratorModel) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "x":
		return m, m.closeDrawer("close button")
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.mobileForm.move(-1)
	case "down", "j":
		m.mobileForm.move(1)
	case "enter", " ":
		row, ok := m.mobileForm.current()
		if !ok {
			return m, nil
		}
		if row.kind == rowHeader {
			m.mobileForm.toggleSection(row.section)
			return m, nil
		}
		sec, _ := m.mobileForm.option(row)
		m.mobile.toggle(sec.ID, row.option)
	}
	return m, nil
}

func (m GeneratorModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.jumping = false
		m.jumpQuery = ""
	case tea.KeyEnter:
		if si, oi, ok := m.form.match(m.jumpQuery); ok {
			m.form.focus(si, oi)
		}
		m.jumping = false
		m.jumpQuery = ""
	case tea.KeyBackspace:
		if r := []rune(m.jumpQuery); len(r) > 0 {
			m.jumpQuery = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.jumpQuery += " "
	case tea.KeyRunes:
		m.jumpQuery += string(msg.Runes)
	}
	return m, nil
}

func (m GeneratorModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = true
		m.helpView.SetContent(renderHelp(m.width))
		m.helpView.GotoTop()
		return m, nil
	case "tab", "shift+tab":
		if m.narrow() {
			return m, nil
		}
		if m.focus == paneForm {
			m.focus = paneContent
		} else {
			m.focus = paneForm
		}
		return m, nil
	case "g":
		m.generate()
		return m, nil
	case "b":
		m.back()
		return m, nil
	case "f":
		if m.narrow() {
			return m, m.openDrawer()
		}
		return m, nil
	case "/":
		if m.activePane() == paneForm {
			m.jumping = true
			m.jumpQuery = ""
		}
		return m, nil
	}

	if m.activePane() == paneForm {
		switch msg.String() {
		case "up", "k":
			m.form.move(-1)
		case "down", "j":
			m.form.move(1)
		case "enter", " ":
			m.activateFormRow()
		}
		return m, nil
	}

	switch msg.String() {
	case "enter", " ":
		if m.view == stack.Generated {
			m.back()
		} else {
			m.generate()
		}
		return m, nil
	}
	if m.view == stack.Generated {
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	return m, nil
}

// activePane is the pane receiving keys; narrow layouts have no side form.
func (m GeneratorModel) activePane() pane {
	if m.narrow() {
		return paneContent
	}
	return m.focus
}

func (m *GeneratorModel) activateFormRow() {
	row, ok := m.form.current()
	if !ok {
		return
	}
	if row.kind == rowHeader {
		m.form.toggleSection(row.section)
		return
	}
	sec, opt := m.form.option(row)
	m.toggleOption(sec.ID, opt.Value)
}

// toggleOption is the input-level handler: disabled options refuse input.
func (m *GeneratorModel) toggleOption(sectionID, value string) bool {
	if m.selection.IsDisabled(sectionID, value) {
		m.logger.Debug("ignored toggle on disabled option",
			zap.String("section", sectionID), zap.String("option", value))
		return false
	}
	changed := m.selection.Toggle(sectionID, value)
	m.logger.Debug("toggled option",
		zap.String("section", sectionID),
		zap.String("option", value),
		zap.String("selected", m.selection.Selected(sectionID)))
	return changed
}

func (m *GeneratorModel) generate() {
	if m.view == stack.Generated {
		return
	}
	m.view.Generate()
	m.logger.Info("project generated",
		zap.Any("selection", m.selection.Values()),
		zap.Bool("empty", m.selection.Empty()))
	m.refreshContent()
}

func (m *GeneratorModel) back() {
	if m.view == stack.Customizing {
		return
	}
	m.view.Back()
	m.logger.Info("back to customization")
	m.refreshContent()
}

func (m *GeneratorModel) openDrawer() tea.Cmd {
	m.drawer.Open()
	m.logger.Debug("filter drawer opened")
	return m.anim.start(true)
}

func (m *GeneratorModel) closeDrawer(via string) tea.Cmd {
	m.drawer.Close()
	m.logger.Debug("filter drawer closed", zap.String("via", via))
	return m.anim.start(false)
}

// Layout

func (m GeneratorModel) bodyHeight() int {
	// title (2 lines) + blank + footer
	h := m.height - 4
	if h < 6 {
		h = 6
	}
	return h
}

func (m GeneratorModel) contentOuterWidth() int {
	if m.narrow() {
		return m.width
	}
	w := m.width - (formWidth + 2) - 1
	if w < 20 {
		w = 20
	}
	return w
}

// contentInner returns the text area of the content card.
func (m GeneratorModel) contentInner() (int, int) {
	w := m.contentOuterWidth() - 4
	if w < 10 {
		w = 10
	}
	return w, m.bodyHeight() - 2
}

func (m *GeneratorModel) resize() {
	w, h := m.contentInner()
	m.content.Width = w
	m.content.Height = h - 2
	if m.content.Height < 1 {
		m.content.Height = 1
	}
	m.helpView.Width = m.width
	m.helpView.Height = m.height
	if m.showHelp {
		m.helpView.SetContent(renderHelp(m.width))
	}
	m.refreshContent()
}

func (m *GeneratorModel) refreshContent() {
	md := project.Instructions().Markdown()
	if m.view == stack.Generated {
		md = project.Generate(m.selection).Markdown()
	}
	m.content.SetContent(renderMarkdown(md, m.glamourStyle, m.content.Width))
	m.content.GotoTop()
}

func renderMarkdown(md, style string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// Rendering

func (m GeneratorModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.helpView.View()
	}

	title := titleStyle.Width(m.width).Render("Project Generator")
	body := m.contentView()
	if !m.narrow() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.formView(), " ", body)
	}
	page := lipgloss.JoinVertical(lipgloss.Left, title, "", body, m.footerView())

	if m.drawerShown() {
		return overlayDrawer(page, m.drawerView(), m.width, m.height, m.anim.progress)
	}
	return page
}

func (m GeneratorModel) formView() string {
	inner := formWidth - 2
	focused := m.focus == paneForm
	text := m.form.view(func(sectionID, value string) (bool, bool) {
		return m.selection.IsSelected(sectionID, value), m.selection.IsDisabled(sectionID, value)
	}, focused, inner)

	height := m.bodyHeight() - 2
	if m.jumping {
		height--
	}
	text = windowLines(text, m.form.cursor, height)
	if m.jumping {
		text += "\n" + m.jumpLine(inner)
	}

	style := formBoxStyle
	if focused {
		style = focusedFormBoxStyle
	}
	return style.Width(formWidth).Height(m.bodyHeight() - 2).Render(text)
}

func (m GeneratorModel) jumpLine(width int) string {
	line := "/" + m.jumpQuery
	if si, oi, ok := m.form.match(m.jumpQuery); ok {
		s := m.form.sections[si]
		line += subtleStyle.Render(fmt.Sprintf(" → %s (%s)", s.Options[oi].Label, s.Name))
	}
	return jumpStyle.MaxWidth(width).Render(line)
}

func (m GeneratorModel) contentView() string {
	focused := m.activePane() == paneContent
	var button string
	if m.view == stack.Generated {
		button = secondaryButtonStyle.Render("← Back to Customization")
	} else {
		button = primaryButtonStyle.Render("Generate Project")
	}
	if focused {
		button = focusedButtonStyle.Render(button)
	}

	var inner string
	if m.view == stack.Generated {
		inner = lipgloss.JoinVertical(lipgloss.Left, button, "", m.content.View())
	} else {
		inner = lipgloss.JoinVertical(lipgloss.Left, m.content.View(), "", button)
	}

	style := contentBoxStyle
	if focused && !m.narrow() {
		style = focusedContentBoxStyle
	}
	return style.Width(m.contentOuterWidth() - 2).Height(m.bodyHeight() - 2).Render(inner)
}

func (m GeneratorModel) drawerView() string {
	w := drawerWidth(m.width) - 3
	header := drawerHeader(w)
	text := m.mobileForm.view(m.mobile.state(m.mobileForm.sections), true, w)
	text = windowLines(text, m.mobileForm.cursor, m.height-2)
	return header + "\n\n" + text
}

func (m GeneratorModel) footerView() string {
	keys := []string{"tab focus", "enter toggle", "/ jump", "g generate", "b back", "? help", "q quit"}
	if m.narrow() {
		keys = []string{"f filters", "enter " + m.buttonVerb(), "? help", "q quit"}
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		key, desc, _ := strings.Cut(k, " ")
		parts[i] = hintKeyStyle.Render(key) + " " + subtleStyle.Render(desc)
	}
	return strings.Join(parts, subtleStyle.Render(" • "))
}

func (m GeneratorModel) buttonVerb() string {
	if m.view == stack.Generated {
		return "back"
	}
	return "generate"
}

// windowLines keeps the rendered line for the row at cursor inside height
// lines. Blank separator lines sit before every header but the first, so
// the row index is translated to a line index first.
func windowLines(text string, cursor, height int) string {
	lines := strings.Split(text, "\n")
	if height <= 0 || len(lines) <= height {
		return text
	}
	line, row := 0, 0
	for i, l := range lines {
		if l == "" {
			continue
		}
		if row == cursor {
			line = i
			break
		}
		row++
	}
	off := 0
	if line >= height {
		off = line - height + 1
	}
	end := off + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[off:end], "\n")
}
