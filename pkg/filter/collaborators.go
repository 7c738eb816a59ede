package filter

import (
	"context"
	"net/url"

	"github.com/courseflow/embedfilter/pkg/marker"
	"github.com/courseflow/embedfilter/pkg/token"
)

// CourseResolver maps a rendering context to the course the page belongs
// to. The host owns course lookup; the filter only forwards the id.
type CourseResolver interface {
	CourseID(ctx context.Context) (string, error)
}

// GuestDetector reports whether the current request comes from a guest
// user. Guests are shown an error fragment instead of the iframe.
type GuestDetector interface {
	IsGuest(ctx context.Context) bool
}

// DisplayURLBuilder builds the question-display endpoint URL for an
// identifier in a course. Implementations append whatever access token the
// endpoint requires.
type DisplayURLBuilder interface {
	DisplayURL(courseID, id string, opts marker.Options) (string, error)
}

// EndpointURLBuilder is the default DisplayURLBuilder. It targets a fixed
// show-question endpoint and appends an iframe-purpose token so the
// endpoint can check the request originated from this filter. The embed
// token from the marker is never forwarded; the two purposes stay separate.
type EndpointURLBuilder struct {
	BaseURL string
	Secret  string
}

// DisplayURL implements DisplayURLBuilder.
func (b EndpointURLBuilder) DisplayURL(courseID, id string, opts marker.Options) (string, error) {
	u, err := url.Parse(b.BaseURL)
	if err != nil {
		return "", NewFilterError("urlbuilder", "invalid base URL", err)
	}

	q := u.Query()
	q.Set("course", courseID)
	q.Set("id", id)
	for name, value := range opts {
		if name == OptionDescription {
			continue
		}
		q.Set(name, value)
	}
	q.Set("token", token.Sign(token.KindIframe, id, b.Secret))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
