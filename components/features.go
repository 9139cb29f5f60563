package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type feature struct {
	Icon  string
	Title string
	Body  string
}

var features = []feature{
	{"lucide--mic", "Voice to invoice", "Describe the work out loud. Transcription and line-item extraction happen for you."},
	{"lucide--list-checks", "Editable line items", "Review quantities, prices, tax and shipping before anything is saved."},
	{"lucide--file-down", "PDF in one click", "Download a clean, numbered invoice ready to email to your client."},
}

func Features() g.Node {
	return Div(
		ID("features"),
		Class("container mx-auto py-16 px-4"),
		H2(Class("text-3xl font-bold text-center mb-10"), g.Text("Why VoiceInvoice")),
		Div(
			Class("grid gap-6 md:grid-cols-3"),
			g.Group(g.Map(features, func(f feature) g.Node {
				return Div(
					Class("card bg-base-200 parallax-card"),
					Div(
						Class("card-body"),
						Icon(f.Icon+" size-6", ""),
						H3(Class("card-title"), g.Text(f.Title)),
						P(g.Text(f.Body)),
					),
				)
			})),
		),
	)
}

func CTA() g.Node {
	return Div(
		Class("container mx-auto py-16 px-4 text-center"),
		H2(Class("text-3xl font-bold"), g.Text("Have a question?")),
		P(Class("mt-3 text-base-content/80"), g.Text("We answer every message, usually within a day.")),
		A(Href("/contact"), Class("btn btn-primary mt-6"), g.Text("Get in touch")),
	)
}
