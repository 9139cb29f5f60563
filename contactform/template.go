package contactform

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	DefaultSuccessMessage = "Thank you for your message! We will respond shortly."
	DefaultErrorMessage   = "There was an error sending your message. Please try again later."
)

// FormTemplate describes the contact form markup. A controller renders it once when
// it is built and keeps that string as the restore target.
type FormTemplate struct {
	ContainerID  string
	Action       string
	ResetAction  string
	SubmitLabel  string
	LoadingLabel string
}

func DefaultTemplate() FormTemplate {
	return FormTemplate{
		ContainerID:  "contact-form-container",
		Action:       "/contact",
		ResetAction:  "/contact/reset",
		SubmitLabel:  "Send Message",
		LoadingLabel: "Sending...",
	}
}

// Form renders the form. While submitting the button is disabled and its label is
// replaced by a loading indicator.
func (t FormTemplate) Form(submitting bool) g.Node {
	return g.El("form",
		ID("contact-form"),
		Class("space-y-4"),
		Method("post"),
		Action(t.Action),
		field("name", "Name", "text"),
		field("email", "Email", "email"),
		field("subject", "Subject", "text"),
		Div(
			Class("form-control"),
			Label(g.Attr("for", "message"), Class("label"), g.Text("Message")),
			Textarea(ID("message"), Name("message"), Rows("5"), Class("textarea textarea-bordered w-full"), Required()),
		),
		submitButton(t, submitting),
	)
}

func field(name, label, kind string) g.Node {
	return Div(
		Class("form-control"),
		Label(g.Attr("for", name), Class("label"), g.Text(label)),
		Input(ID(name), Name(name), Type(kind), Class("input input-bordered w-full"), Required()),
	)
}

func submitButton(t FormTemplate, submitting bool) g.Node {
	if submitting {
		return Button(
			Type("submit"),
			Class("btn btn-primary"),
			Disabled(),
			Span(Class("loading loading-spinner"), g.Attr("aria-hidden", "true")),
			g.Text(" "+t.LoadingLabel),
		)
	}
	return Button(Type("submit"), Class("btn btn-primary"), g.Text(t.SubmitLabel))
}

// SuccessPanel is shown in place of the form after the backend accepted a message.
func (t FormTemplate) SuccessPanel(message string) g.Node {
	return resultPanel("success", "Message sent", message, t.ResetAction, "Send another message")
}

// ErrorPanel is shown in place of the form after a failed submission.
func (t FormTemplate) ErrorPanel(message string) g.Node {
	return resultPanel("error", "Something went wrong", message, t.ResetAction, "Try again")
}

func resultPanel(kind, title, message, resetAction, resetLabel string) g.Node {
	return Div(
		Class("contact-result contact-result-"+kind+" text-center space-y-4"),
		g.Attr("role", "status"),
		H3(Class("text-xl font-bold"), g.Text(title)),
		P(Class("contact-result-message"), g.Text(message)),
		g.El("form",
			Method("post"),
			Action(resetAction),
			Button(Type("submit"), Class("btn btn-outline"), g.Text(resetLabel)),
		),
	)
}

func renderString(n g.Node) string {
	var b strings.Builder
	_ = n.Render(&b)
	return b.String()
}
