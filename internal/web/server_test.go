package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/net/html"

	"github.com/phravins/stackgen/internal/catalog"
	"github.com/phravins/stackgen/internal/project"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func get(t *testing.T, target string) (int, string) {
	t.Helper()
	srv := NewServer(catalog.Default(), nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestPageCustomizing(t *testing.T) {
	code, body := get(t, "/")
	require.Equal(t, http.StatusOK, code)

	assert.Contains(t, strings.ToLower(body), "<!doctype html>")
	assert.Contains(t, body, "How to Customize Your Stack")
	assert.Contains(t, body, `href="/?view=generated"`)
	assert.NotContains(t, body, "Back to Customization")
	assert.NotContains(t, body, `id="mobile-drawer"`)
	// no selection: nothing disabled
	assert.NotContains(t, body, `aria-disabled="true"`)
	assert.Contains(t, body, `href="/?frontend=react"`)
}

func TestPageDisablesOtherOptions(t *testing.T) {
	_, body := get(t, "/?frontend=react")
	opts := desktopOptions(t, body)

	assert.Equal(t, optionNode{tag: "a", checked: "true", href: "/"}, opts["react"], "re-selecting react clears the section")
	for _, v := range []string{"angular", "vue", "svelte"} {
		assert.Equal(t, optionNode{tag: "div", checked: "false", disabled: "true"}, opts[v], v)
	}
	assert.Contains(t, body, "cursor-not-allowed")
	// other sections are untouched
	assert.Equal(t, optionNode{tag: "a", checked: "false", href: "/?backend=nodejs&frontend=react"}, opts["nodejs"])
}

func TestDesktopOptionsAreSingleLinks(t *testing.T) {
	for _, target := range []string{"/", "/?frontend=react&database=redis&drawer=open"} {
		t.Run(target, func(t *testing.T) {
			_, body := get(t, target)
			doc, err := html.Parse(strings.NewReader(body))
			require.NoError(t, err)

			var nested []string
			var walk func(n *html.Node, inLink bool)
			walk = func(n *html.Node, inLink bool) {
				if n.Type == html.ElementNode {
					switch n.Data {
					case "input", "label", "button", "select", "textarea":
						if inLink {
							nested = append(nested, n.Data+"#"+attr(n, "id"))
						}
					case "a":
						inLink = true
					}
				}
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c, inLink)
				}
			}
			walk(doc, false)
			assert.Empty(t, nested, "interactive elements inside links")

			assert.Len(t, desktopOptions(t, body), 16)
		})
	}
}

func TestPageGenerated(t *testing.T) {
	code, body := get(t, "/?view=generated")
	require.Equal(t, http.StatusOK, code)

	assert.Contains(t, body, "← Back to Customization")
	assert.Contains(t, body, "Local Eats Explorer")
	assert.Contains(t, body, "🌐 Frontend Technology: React.js")
	assert.Contains(t, body, "💬 Socket.IO:")
	assert.Contains(t, body, `href="/" id="back"`)
	assert.NotContains(t, body, "How to Customize Your Stack")
}

func TestPageGeneratedIgnoresSelection(t *testing.T) {
	_, body := get(t, "/?view=generated&frontend=svelte&backend=spring")
	assert.Contains(t, body, "React.js")
	assert.Contains(t, body, "Node.js")
	assert.Contains(t, body, "MongoDB")
}

func TestMobileDrawer(t *testing.T) {
	_, body := get(t, "/?frontend=react&drawer=open")

	assert.Contains(t, body, `id="mobile-drawer"`)
	assert.Contains(t, body, "Close menu")
	assert.Contains(t, body, `href="/?frontend=react" id="drawer-close"`)
	assert.Contains(t, body, `href="/?frontend=react" id="drawer-backdrop"`)
	// drawer checkboxes are not wired to the selection
	assert.Contains(t, body, `id="filter-mobile-frontend-0" name="frontend[]" value="react" type="checkbox" class=`)
	assert.Contains(t, body, `id="filter-mobile-frontend-1" name="frontend[]" value="angular" type="checkbox" class=`)
}

func TestCatalogAPI(t *testing.T) {
	code, body := get(t, "/api/catalog")
	require.Equal(t, http.StatusOK, code)

	var resp struct {
		Sections []catalog.Section `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, catalog.Default().Sections(), resp.Sections)
}

func TestIdeaAPI(t *testing.T) {
	code, body := get(t, "/api/idea")
	require.Equal(t, http.StatusOK, code)

	var idea project.Idea
	require.NoError(t, json.Unmarshal([]byte(body), &idea))
	assert.Equal(t, "Local Eats Explorer", idea.Title)
	assert.Len(t, idea.Tools, 5)
}

func TestHealthz(t *testing.T) {
	code, body := get(t, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestNotFound(t *testing.T) {
	code, _ := get(t, "/missing")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestListenAndServeShutdown(t *testing.T) {
	srv := NewServer(catalog.Default(), nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	srv := NewServer(catalog.Default(), nil)
	err := srv.ListenAndServe(context.Background(), "127.0.0.1:-1")
	assert.Error(t, err)
}

type optionNode struct {
	tag      string
	checked  string
	disabled string
	href     string
}

// desktopOptions indexes the desktop filter rows by option value.
func desktopOptions(t *testing.T, body string) map[string]optionNode {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	out := make(map[string]optionNode)
	var walk func(n *html.Node, inForm bool)
	walk = func(n *html.Node, inForm bool) {
		if n.Type == html.ElementNode {
			if attr(n, "id") == "desktop-filters" {
				inForm = true
			}
			if inForm && attr(n, "role") == "checkbox" {
				out[attr(n, "data-value")] = optionNode{
					tag:      n.Data,
					checked:  attr(n, "aria-checked"),
					disabled: attr(n, "aria-disabled"),
					href:     attr(n, "href"),
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inForm)
		}
	}
	walk(doc, false)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
