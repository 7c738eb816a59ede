// Package filter implements the embed-question content filter. It scans
// rendered page text for delimited embed markers, verifies the signature
// token each marker carries, and replaces the marker with an iframe
// fragment pointing at the question-display endpoint, or with an inline
// error fragment when anything about the marker is wrong. Failures are
// per-marker and never escape the filter, so the rest of the page renders.
package filter

import (
	"context"
	"html"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/courseflow/embedfilter/pkg/marker"
	"github.com/courseflow/embedfilter/pkg/render"
	"github.com/courseflow/embedfilter/pkg/token"
	"github.com/courseflow/embedfilter/pkg/tracing"
)

// Filter is the embed-marker processor. It is stateless across invocations
// apart from read-only configuration, so one instance may serve many pages.
type Filter struct {
	cfg             Config
	renderer        render.Renderer
	logger          *zap.Logger
	tracer          trace.Tracer
	tracingShutdown func(context.Context) error
}

// New creates a Filter from config. Defaults are filled for the delimiter
// pair, renderer, identifier grammar and logger. If config.Tracing is set,
// OpenTelemetry export is configured here and torn down by Close.
func New(cfg Config) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Prefix == "" {
		cfg.Prefix = marker.DefaultPrefix
		cfg.Suffix = marker.DefaultSuffix
	}
	if cfg.ValidID == nil {
		cfg.ValidID = func(id string) bool { return id != "" }
	}
	if cfg.Language == language.Und {
		cfg.Language = language.English
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = render.NewHTMLRenderer(cfg.Language)
	}

	f := &Filter{
		cfg:      cfg,
		renderer: renderer,
		logger:   logger,
		tracer:   otel.Tracer("embedfilter/filter"),
	}

	if cfg.Tracing != nil {
		shutdown, err := tracing.Setup(context.Background(), *cfg.Tracing, logger)
		if err != nil {
			logger.Warn("Failed to setup tracing, continuing without tracing", zap.Error(err))
		} else {
			f.tracingShutdown = shutdown
		}
	}

	return f, nil
}

// Close flushes tracing export if New configured it. Safe to call when
// tracing was never set up.
func (f *Filter) Close() error {
	if f.tracingShutdown == nil {
		return nil
	}
	return tracing.Shutdown(f.tracingShutdown, f.logger)
}

// Apply is the single entry point the host's filtering pipeline calls:
// it returns text with every embed marker substituted. Text without a
// marker is returned unchanged.
func (f *Filter) Apply(ctx context.Context, text string) string {
	// Cheap pre-check so pages without markers skip the regex scan.
	if !strings.Contains(text, f.cfg.Prefix) {
		return text
	}

	ctx, span := f.tracer.Start(ctx, "filter.Apply")
	defer span.End()

	markers, rejected := 0, 0
	out := marker.ReplaceAll(text, f.cfg.Prefix, f.cfg.Suffix, func(interior string) string {
		markers++
		fragment, ok := f.substitute(ctx, interior)
		if !ok {
			rejected++
		}
		return fragment
	})

	span.SetAttributes(
		attribute.Int("filter.markers", markers),
		attribute.Int("filter.rejected", rejected),
	)

	return out
}

// substitute processes one marker interior and returns its replacement
// markup. ok reports whether an iframe (rather than an error fragment) was
// produced.
func (f *Filter) substitute(ctx context.Context, interior string) (string, bool) {
	// The interior arrives HTML-entity-encoded from the rendering layer.
	m, err := marker.Decode(html.UnescapeString(interior), f.cfg.ValidID)
	if err != nil {
		f.logger.Debug("embed marker rejected: decode failed",
			zap.String("interior", interior),
			zap.Error(err))
		return f.renderer.RenderError(render.ErrorFragment{Reason: render.ReasonInvalidMarker}), false
	}

	if !token.Verify(token.KindEmbed, m.ID, m.Signature, f.cfg.Secret) {
		f.logger.Debug("embed marker rejected: signature mismatch",
			zap.String("id", m.ID))
		return f.renderer.RenderError(render.ErrorFragment{Reason: render.ReasonInvalidToken}), false
	}

	if f.cfg.Guests != nil && f.cfg.Guests.IsGuest(ctx) {
		return f.renderer.RenderError(render.ErrorFragment{Reason: render.ReasonNoGuests}), false
	}

	var courseID string
	if f.cfg.Resolver != nil {
		courseID, err = f.cfg.Resolver.CourseID(ctx)
		if err != nil {
			f.logger.Debug("embed marker rejected: course resolution failed",
				zap.String("id", m.ID),
				zap.Error(err))
			return f.renderer.RenderError(render.ErrorFragment{Reason: render.ReasonInvalidMarker}), false
		}
	}

	displayURL, err := f.cfg.URLBuilder.DisplayURL(courseID, m.ID, m.Options)
	if err != nil {
		f.logger.Debug("embed marker rejected: display URL build failed",
			zap.String("id", m.ID),
			zap.Error(err))
		return f.renderer.RenderError(render.ErrorFragment{Reason: render.ReasonInvalidMarker}), false
	}

	title := m.Options[OptionDescription]
	if title == "" {
		title = render.DefaultTitle()
	}

	return f.renderer.RenderIframe(render.IframeFragment{URL: displayURL, Title: title}), true
}

// EmbedCode builds a marker for id signed with the filter's secret, ready
// to paste into page content. Options are carried through to the display
// URL when the marker is later filtered.
func (f *Filter) EmbedCode(id string, opts marker.Options) (string, error) {
	if !f.cfg.ValidID(id) {
		return "", marker.NewDecodeError(id, "identifier does not satisfy the host grammar", marker.ErrInvalidIdentifier)
	}
	interior := marker.EncodeInterior(id, opts, token.Sign(token.KindEmbed, id, f.cfg.Secret))
	return f.cfg.Prefix + interior + f.cfg.Suffix, nil
}
