package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactSection wraps the form container. markup is whatever the visitor's
// controller currently shows and is already escaped.
func ContactSection(containerID, markup string) g.Node {
	return Div(
		ID("contact"),
		Class("container mx-auto py-16 px-4 max-w-xl"),
		H1(Class("text-4xl font-bold mb-2"), g.Text("Contact us")),
		P(Class("mb-8 text-base-content/80"), g.Text("Questions about billing, features or your account? Drop us a line.")),
		Div(
			ID(containerID),
			Class("card bg-base-200 card-body"),
			g.Raw(markup),
		),
	)
}
