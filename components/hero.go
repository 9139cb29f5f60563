package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// IntroPhrases cycle in the hero headline.
var IntroPhrases = []string{
	"Speak your work.",
	"Skip the spreadsheet.",
	"Send the invoice.",
}

func Hero() g.Node {
	return Div(
		Class("hero min-h-[70vh] bg-base-200"),
		ID("hero"),
		Div(
			Class("hero-content text-center"),
			Div(
				Class("max-w-2xl"),
				H1(
					Class("text-5xl font-extrabold"),
					Span(
						ID("typed-intro"),
						g.Attr("data-phrases", strings.Join(IntroPhrases, "|")),
						g.Text(IntroPhrases[0]),
					),
				),
				P(
					Class("py-6 text-base-content/80"),
					g.Text("Record a voice note or type a few lines about the job. We transcribe it, structure it into line items, and hand you a PDF invoice ready to send."),
				),
				Div(
					Class("inline-flex gap-3"),
					A(Href("/account"), Class("btn btn-primary"), Icon("lucide--file-text size-4", ""), g.Text("Create an invoice")),
					A(Href("#features"), Class("btn btn-ghost"), Icon("lucide--arrow-down size-4", ""), g.Text("Learn more")),
				),
			),
		),
	)
}
