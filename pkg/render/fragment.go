// Package render defines the value descriptors a filtered marker is turned
// into and the renderer capabilities that produce markup from them. The
// filter decides which descriptor applies; renderers only format.
package render

// Reason identifies why a marker could not be rendered as an iframe.
type Reason string

const (
	// ReasonInvalidToken is used when the signature token does not match.
	ReasonInvalidToken Reason = "invalidtoken"

	// ReasonNoGuests is used when the current user is a guest.
	ReasonNoGuests Reason = "noguests"

	// ReasonInvalidMarker is used when the marker itself cannot be decoded.
	ReasonInvalidMarker Reason = "invalidmarker"
)

// IframeFragment describes a successfully resolved embed: the display URL
// the iframe points at and an accessibility title for the element.
type IframeFragment struct {
	URL   string
	Title string
}

// ErrorFragment describes a marker that failed validation. Reason selects
// the localized message shown inline; the rest of the page still renders.
type ErrorFragment struct {
	Reason Reason
}

// IframeRenderer turns an iframe descriptor into markup.
type IframeRenderer interface {
	RenderIframe(f IframeFragment) string
}

// ErrorRenderer turns an error descriptor into markup.
type ErrorRenderer interface {
	RenderError(f ErrorFragment) string
}

// Renderer composes both fragment capabilities. Hosts with their own
// templating implement this pair; HTMLRenderer is the default.
type Renderer interface {
	IframeRenderer
	ErrorRenderer
}
