package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(siteName string) g.Node {
	return Span(
		Class("flex items-center gap-2 font-bold text-xl"),
		Icon("lucide--mic", ""),
		g.Text(siteName),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if parts := strings.Fields(iconClass); len(parts) > 1 {
		classes = fmt.Sprintf("iconify inline-block %s", strings.Join(parts[1:], " "))
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}
