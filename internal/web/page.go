package web

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/phravins/stackgen/internal/catalog"
	"github.com/phravins/stackgen/internal/project"
	"github.com/phravins/stackgen/internal/stack"
)

const pageCSS = `
details > summary { list-style: none; cursor: pointer; }
details > summary::-webkit-details-marker { display: none; }
details[open] .sign-closed, details:not([open]) .sign-open { display: none; }
@keyframes backdrop-in { from { opacity: 0; } to { opacity: 1; } }
@keyframes panel-in { from { transform: translateX(100%); } to { transform: translateX(0); } }
.drawer-backdrop { animation: backdrop-in 300ms linear; }
.drawer-panel { animation: panel-in 300ms ease-in-out; }
`

func classNames(classes ...string) string {
	out := ""
	for _, c := range classes {
		if c == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += c
	}
	return out
}

func renderPage(c catalog.Catalog, s pageState) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text("Project Generator")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				g.El("style", g.Raw(pageCSS)),
			),
			h.Body(h.Class("bg-white"),
				h.Div(
					g.If(s.drawer.IsOpen(), mobileDrawer(c, s)),
					h.Main(h.Class("mx-auto px-4 sm:px-6 lg:px-8"),
						h.Div(h.Class("flex items-baseline justify-between border-b border-gray-200 pb-6 pt-4"),
							h.H1(h.Class("text-4xl font-bold tracking-tight text-gray-900"), g.Text("Project Generator")),
							h.A(h.Href(s.drawerHref(true)), h.ID("mobile-filters-trigger"),
								h.Class("-m-2 ml-4 p-2 text-gray-400 hover:text-gray-500 lg:hidden"),
								h.Span(h.Class("sr-only"), g.Text("Filters")),
								g.Text("☰ Filters"),
							),
						),
						h.Section(g.Attr("aria-labelledby", "stack-heading"), h.Class("pt-6"),
							h.H2(h.ID("stack-heading"), h.Class("sr-only"), g.Text("Customize your stack")),
							h.Div(h.Class("flex gap-x-8 gap-y-10"),
								desktopForm(c, s),
								h.Div(h.Class("flex flex-col items-center justify-center"),
									g.If(s.view == stack.Generated, generatedContent(project.Generate(s.selection), s)),
									g.If(s.view == stack.Customizing, instructionsContent(project.Instructions(), s)),
								),
							),
						),
					),
				),
			),
		),
	)
}

func disclosure(sectionClass, buttonClass string, sec catalog.Section, panelClass string, options []g.Node) g.Node {
	return h.Details(g.Attr("open"), h.Class(sectionClass),
		h.Summary(h.Class(buttonClass),
			h.Span(h.Class("font-medium text-gray-900"), g.Text(sec.Name)),
			h.Span(h.Class("ml-6 flex items-center"),
				h.Span(h.Class("sign-open"), g.Attr("aria-hidden", "true"), g.Text("−")),
				h.Span(h.Class("sign-closed"), g.Attr("aria-hidden", "true"), g.Text("+")),
			),
		),
		h.Div(h.Class("pt-6"),
			h.Div(h.Class(panelClass), g.Group(options)),
		),
	)
}

// desktopForm is wired to the selection through desktopOption links.
func desktopForm(c catalog.Catalog, s pageState) g.Node {
	var sections []g.Node
	for _, sec := range c.Sections() {
		var options []g.Node
		for i, opt := range sec.Options {
			options = append(options, desktopOption(sec, i, opt, s))
		}
		sections = append(sections, disclosure(
			"border-b border-gray-200 py-6",
			"flex w-full items-center justify-between bg-white py-3 text-sm text-gray-400 hover:text-gray-500",
			sec, "space-y-4", options))
	}
	return h.Div(h.Class("hidden lg:block"), h.ID("desktop-filters"), g.Group(sections))
}

// desktopOption renders one option as a link that toggles it. The box and
// label are plain spans so the link is the only interactive element; a
// disabled option is the same row without the link.
func desktopOption(sec catalog.Section, idx int, opt catalog.Option, s pageState) g.Node {
	id := fmt.Sprintf("filter-%s-%d", sec.ID, idx)
	disabled := s.selection.IsDisabled(sec.ID, opt.Value)
	checked := s.selection.IsSelected(sec.ID, opt.Value)

	box := h.Span(g.Attr("aria-hidden", "true"),
		h.Class(classNames(
			"pointer-events-none flex h-4 w-4 items-center justify-center rounded border text-xs",
			pick(checked, "border-indigo-600 bg-indigo-600 text-white", "border-gray-300 bg-white"),
			disabledClass(disabled, "opacity-50"),
		)),
		g.If(checked, g.Text("✓")),
	)
	label := h.Span(
		h.Class(classNames("ml-3 text-sm", pick(disabled, "text-gray-400", "text-gray-600"))),
		g.Text(opt.Label),
	)

	if disabled {
		return h.Div(h.ID(id), g.Attr("role", "checkbox"), g.Attr("aria-checked", "false"), g.Attr("aria-disabled", "true"),
			g.Attr("data-value", opt.Value),
			h.Class("flex cursor-not-allowed items-center"),
			box, label,
		)
	}
	return h.A(h.Href(s.toggleHref(sec.ID, opt.Value)), h.ID(id), g.Attr("role", "checkbox"),
		g.Attr("aria-checked", strconv.FormatBool(checked)),
		g.Attr("data-value", opt.Value),
		h.Class("flex items-center"),
		box, label,
	)
}

// mobileDrawer previews the filters in an overlay. Its checkboxes keep their
// own flags and are not connected to the selection.
func mobileDrawer(c catalog.Catalog, s pageState) g.Node {
	var sections []g.Node
	for _, sec := range c.Sections() {
		var options []g.Node
		for i, opt := range sec.Options {
			id := fmt.Sprintf("filter-mobile-%s-%d", sec.ID, i)
			options = append(options, h.Div(h.Class("flex items-center"),
				h.Input(
					h.ID(id),
					h.Name(sec.ID+"[]"),
					h.Value(opt.Value),
					h.Type("checkbox"),
					h.Class("h-4 w-4 rounded border-gray-300 text-indigo-600 focus:ring-indigo-500"),
				),
				g.El("label", g.Attr("for", id), h.Class("ml-3 min-w-0 flex-1 text-gray-500"), g.Text(opt.Label)),
			))
		}
		sections = append(sections, disclosure(
			"border-t border-gray-200 px-4 py-6",
			"flex w-full items-center justify-between bg-white px-2 py-3 text-gray-400 hover:text-gray-500",
			sec, "space-y-6", options))
	}

	closeHref := s.drawerHref(false)
	return h.Div(h.ID("mobile-drawer"), h.Class("relative z-40 lg:hidden"), g.Attr("role", "dialog"), g.Attr("aria-modal", "true"),
		h.A(h.Href(closeHref), h.ID("drawer-backdrop"), h.Class("drawer-backdrop fixed inset-0 bg-black bg-opacity-25"),
			h.Span(h.Class("sr-only"), g.Text("Close filters")),
		),
		h.Div(h.Class("pointer-events-none fixed inset-0 z-40 flex"),
			h.Div(h.Class("drawer-panel pointer-events-auto relative ml-auto flex h-full w-full max-w-xs flex-col overflow-y-auto bg-white py-4 pb-12 shadow-xl"),
				h.Div(h.Class("flex items-center justify-between px-4"),
					h.H2(h.Class("text-lg font-medium text-gray-900"), g.Text("Filters")),
					h.A(h.Href(closeHref), h.ID("drawer-close"),
						h.Class("-mr-2 flex h-10 w-10 items-center justify-center rounded-md bg-white p-2 text-gray-400"),
						h.Span(h.Class("sr-only"), g.Text("Close menu")),
						h.Span(g.Attr("aria-hidden", "true"), g.Text("✕")),
					),
				),
				g.El("form", h.Class("mt-4 border-t border-gray-200"), h.ID("mobile-filters"), g.Group(sections)),
			),
		),
	)
}

func generatedContent(idea project.Idea, s pageState) g.Node {
	var stackNodes []g.Node
	for _, comp := range idea.Stack {
		stackNodes = append(stackNodes,
			h.H3(h.Class("text-md font-semibold text-gray-900"), g.Textf("%s %s: %s", comp.Icon, comp.Role, comp.Name)),
			h.P(g.Text(comp.Notes)),
		)
	}
	var toolNodes []g.Node
	for _, comp := range idea.Tools {
		toolNodes = append(toolNodes,
			h.H3(h.Class("text-md font-semibold text-gray-900"), g.Textf("%s %s:", comp.Icon, comp.Name)),
			h.P(g.Text(comp.Notes)),
		)
	}

	return h.Div(h.ID("content"), h.Class("border p-6 lg:col-span-3"),
		h.Div(h.Class("space-y-4"),
			h.A(h.Href(s.backHref()), h.ID("back"),
				h.Class("mt-4 inline-block rounded-md bg-gray-200 px-3.5 py-2.5 text-sm font-semibold text-gray-900 shadow-sm hover:bg-gray-300"),
				g.Text("← Back to Customization"),
			),
			h.H2(h.Class("text-2xl font-bold text-indigo-600"), g.Textf("🚀 Project Idea: %q", idea.Title)),
			h.H3(h.Class("text-lg font-semibold text-gray-900"), g.Text("📝 Project Description:")),
			h.P(h.Class("text-gray-600"), g.Text(idea.Description)),
			h.H2(h.Class("text-lg font-semibold text-gray-900"), g.Text("🔧 Tech Stack:")),
			g.Group(stackNodes),
			h.H3(h.Class("text-md font-semibold text-gray-900"), g.Text("🛠️ Additional Tools:")),
			g.Group(toolNodes),
			h.P(h.Class("text-indigo-700"), g.Text(idea.Closing)),
		),
	)
}

func instructionsContent(guide project.Guide, s pageState) g.Node {
	var steps []g.Node
	for _, step := range guide.Steps {
		steps = append(steps, h.Li(g.Text(step)))
	}
	return h.Div(h.ID("content"), h.Class("border p-6"),
		h.Div(h.Class("space-y-4"),
			h.H2(h.Class("text-lg font-semibold text-gray-900"), g.Text(guide.Title)),
			h.P(h.Class("text-gray-600"), g.Text(guide.Intro)),
			h.Ol(h.Class("list-inside list-decimal space-y-2"), g.Group(steps)),
			h.P(h.Class("text-gray-600"), g.Text(guide.Outro)),
			h.P(h.Class("text-sm text-gray-500"), g.Text(guide.Note)),
			h.A(h.Href(s.generateHref()), h.ID("generate"),
				h.Class("mt-4 inline-block rounded-md bg-indigo-600 px-3.5 py-2.5 text-sm font-semibold text-white shadow-sm hover:bg-indigo-500"),
				g.Text("Generate Project"),
			),
		),
	)
}

func disabledClass(disabled bool, class string) string {
	if disabled {
		return class
	}
	return ""
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
