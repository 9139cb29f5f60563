package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type NavItem struct {
	Label    string
	Href     string
	External bool
}

func NavItems(invoiceToolURL string) []NavItem {
	return []NavItem{
		{Label: "Home", Href: "/"},
		{Label: "Pricing", Href: "/pricing"},
		{Label: "Contact", Href: "/contact"},
		{Label: "Account", Href: "/account"},
		{Label: "Invoice Tool", Href: invoiceToolURL, External: true},
	}
}

// IsActive reports whether item links to the page at path. External links are
// never active.
func IsActive(item NavItem, path string) bool {
	if item.External {
		return false
	}
	if path == "" {
		path = "/"
	}
	if item.Href == "/" {
		return path == "/"
	}
	return path == item.Href || strings.HasPrefix(path, item.Href+"/")
}

func Topbar(siteName, activePath string, items []NavItem) g.Node {
	return Div(
		Class("navbar bg-base-100 shadow-sm sticky top-0 z-50"),
		Div(
			Class("flex-1"),
			A(Href("/"), Class("btn btn-ghost"), Logo(siteName)),
		),
		Ul(
			Class("menu menu-horizontal px-1 gap-1"),
			g.Group(g.Map(items, func(item NavItem) g.Node {
				return Li(navLink(item, IsActive(item, activePath)))
			})),
		),
	)
}

func navLink(item NavItem, active bool) g.Node {
	return A(
		Href(item.Href),
		g.If(active, Class("nav-link active")),
		g.If(!active, Class("nav-link")),
		g.If(active, g.Attr("aria-current", "page")),
		g.If(item.External, g.Attr("rel", "noopener")),
		g.Text(item.Label),
	)
}
