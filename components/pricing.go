package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Plan struct {
	Name     string
	Price    string
	Period   string
	Perks    []string
	Featured bool
}

var Plans = []Plan{
	{Name: "Free", Price: "$0", Period: "forever", Perks: []string{"5 invoices a month", "Text input", "PDF download"}},
	{Name: "Pro", Price: "$9", Period: "per month", Perks: []string{"Unlimited invoices", "Voice input", "Saved clients"}, Featured: true},
	{Name: "Team", Price: "$29", Period: "per month", Perks: []string{"Everything in Pro", "5 seats", "Priority support"}},
}

func Pricing(plans []Plan) g.Node {
	return Div(
		ID("pricing"),
		Class("container mx-auto py-16 px-4"),
		H1(Class("text-4xl font-bold text-center mb-10"), g.Text("Pricing")),
		Div(
			Class("grid gap-6 md:grid-cols-3"),
			g.Group(g.Map(plans, planCard)),
		),
	)
}

func planCard(p Plan) g.Node {
	cardClass := "card bg-base-200"
	if p.Featured {
		cardClass = "card bg-base-200 border-2 border-primary"
	}
	return Div(
		Class(cardClass),
		Div(
			Class("card-body"),
			H2(Class("card-title"), g.Text(p.Name)),
			P(Span(Class("text-4xl font-extrabold"), g.Text(p.Price)), g.Text(" "+p.Period)),
			Ul(
				Class("space-y-1"),
				g.Group(g.Map(p.Perks, func(perk string) g.Node {
					return Li(Icon("lucide--check size-4", ""), g.Text(" "+perk))
				})),
			),
			Div(
				Class("card-actions justify-end"),
				A(Href("/account"), Class("btn btn-primary"), g.Text("Choose "+p.Name)),
			),
		),
	)
}
