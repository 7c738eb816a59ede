package render

import (
	"fmt"
	"html"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/courseflow/embedfilter/internal/locale"
)

// HTMLRenderer renders fragments as plain HTML elements. URL and title are
// attribute-escaped; error messages are resolved against the locale catalog
// for the configured language.
type HTMLRenderer struct {
	lang language.Tag
}

// NewHTMLRenderer creates a renderer producing messages for the given
// language. Unsupported languages fall back to English.
func NewHTMLRenderer(lang language.Tag) *HTMLRenderer {
	return &HTMLRenderer{lang: lang}
}

// RenderIframe produces the iframe element for a resolved embed.
func (r *HTMLRenderer) RenderIframe(f IframeFragment) string {
	return fmt.Sprintf(
		`<iframe class="embedfilter-iframe" src="%s" title="%s" allow="fullscreen"></iframe>`,
		html.EscapeString(f.URL), html.EscapeString(f.Title))
}

// RenderError produces the inline error element for a rejected marker.
func (r *HTMLRenderer) RenderError(f ErrorFragment) string {
	return fmt.Sprintf(`<span class="embedfilter-error">%s</span>`,
		html.EscapeString(locale.Lookup(r.lang, messageKey(f.Reason))))
}

func messageKey(reason Reason) string {
	switch reason {
	case ReasonNoGuests:
		return locale.KeyNoGuests
	case ReasonInvalidMarker:
		return locale.KeyInvalidMarker
	default:
		return locale.KeyInvalidToken
	}
}

// DefaultTitle returns a fresh accessibility title for an iframe whose
// marker did not carry a description option. Titles must be unique within
// a page, so a random suffix is used rather than a counter.
func DefaultTitle() string {
	return "Embedded question " + uuid.NewString()
}
