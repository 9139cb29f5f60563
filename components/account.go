package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type AccountState struct {
	SignedIn bool
	Message  string
	UserID   string
	Error    string
}

func AccountPanel(s AccountState, invoiceToolURL string) g.Node {
	return Div(
		ID("account"),
		Class("container mx-auto py-16 px-4 max-w-xl"),
		H1(Class("text-4xl font-bold mb-6"), g.Text("Your account")),
		accountBody(s, invoiceToolURL),
	)
}

func accountBody(s AccountState, invoiceToolURL string) g.Node {
	switch {
	case !s.SignedIn:
		return Div(
			Class("alert"),
			g.Attr("role", "status"),
			Span(g.Text("Sign in to open the invoice tool.")),
			Div(ID("sign-in"), g.Attr("data-auth-widget", "sign-in")),
		)
	case s.Error != "":
		return Div(
			Class("alert alert-error"),
			g.Attr("role", "alert"),
			Span(g.Text(s.Error)),
		)
	default:
		return Div(
			Class("space-y-4"),
			Div(Class("alert alert-success"), Span(g.Text(s.Message))),
			g.If(s.UserID != "", P(Class("text-sm"), g.Text("User: "+s.UserID))),
			A(Href(invoiceToolURL), Class("btn btn-primary"), g.Text("Open the invoice tool")),
		)
	}
}
