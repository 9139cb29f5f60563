package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(siteName string) g.Node {
	links := []NavItem{
		{Label: "Pricing", Href: "/pricing"},
		{Label: "Contact", Href: "/contact"},
	}

	return Div(
		Class("footer footer-center p-10 bg-base-200"),
		Div(
			Class("grid grid-flow-col gap-4"),
			g.Group(g.Map(links, func(item NavItem) g.Node {
				return navLink(item, false)
			})),
		),
		P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), siteName))),
	)
}
