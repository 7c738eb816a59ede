package filter

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/courseflow/embedfilter/pkg/marker"
	"github.com/courseflow/embedfilter/pkg/render"
	"github.com/courseflow/embedfilter/pkg/tracing"
)

// OptionDescription is the marker option carrying the accessibility title
// for the iframe. When absent a fresh unique title is generated.
const OptionDescription = "description"

// Config defines the configuration for a Filter.
type Config struct {
	// Secret is the shared secret tokens are signed with. Required.
	Secret string

	// Prefix and Suffix delimit markers in page text. Defaults: {Q{ and }Q}.
	Prefix string
	Suffix string

	// URLBuilder builds the question-display URL for a verified marker.
	// Required; EndpointURLBuilder is the stock implementation.
	URLBuilder DisplayURLBuilder

	// Resolver maps the rendering context to a course id. Optional; when
	// nil the display URL carries an empty course parameter.
	Resolver CourseResolver

	// Guests detects guest users. Optional; when nil everyone may view.
	Guests GuestDetector

	// ValidID is the host's identifier grammar. Optional; when nil any
	// non-empty identifier is accepted.
	ValidID marker.IDValidator

	// Renderer formats fragments. Optional; defaults to HTMLRenderer.
	Renderer render.Renderer

	// Language selects localized error messages. Defaults to English.
	Language language.Tag

	// Logger is used for debug logging of rejected markers. Optional.
	Logger *zap.Logger

	// Tracing, when non-nil, sets up OpenTelemetry export during New. The
	// filter emits one span per Apply call either way.
	Tracing *tracing.Config
}

// DefaultConfig returns a configuration using the stock URL builder against
// the given show-question endpoint.
func DefaultConfig(secret, displayBaseURL string) Config {
	return Config{
		Secret:     secret,
		Prefix:     marker.DefaultPrefix,
		Suffix:     marker.DefaultSuffix,
		URLBuilder: EndpointURLBuilder{BaseURL: displayBaseURL, Secret: secret},
		Language:   language.English,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("secret cannot be empty")
	}
	if c.URLBuilder == nil {
		return errors.New("URL builder cannot be nil")
	}
	if (c.Prefix == "") != (c.Suffix == "") {
		return errors.New("prefix and suffix must be set together")
	}
	return nil
}
