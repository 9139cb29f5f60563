package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	SiteName    string
	// ActivePath is the request path, used to highlight the matching nav link.
	ActivePath     string
	InvoiceToolURL string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.SiteName == "" {
		config.SiteName = "VoiceInvoice"
	}

	if config.Title == "" {
		config.Title = config.SiteName + " - Invoices from your voice"
	}

	if config.Description == "" {
		config.Description = "Speak or type what you did, and get a ready-to-send invoice PDF in seconds."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/daisyui@4/dist/full.min.css")),
				Script(Src("https://cdn.tailwindcss.com")),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				Topbar(config.SiteName, config.ActivePath, NavItems(config.InvoiceToolURL)),
				g.Group(content),
				PageFooter(config.SiteName),
			),
		),
	})
}
