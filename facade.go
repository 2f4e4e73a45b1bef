// Package formbind turns typed schemas into rendered forms and submitted
// form bodies back into nested value trees. The root package is a thin
// facade over pkg/orchestrator and friends so most callers need one import.
package formbind

import (
	"context"
	"io/fs"

	internalloader "github.com/goliatone/go-formbind/internal/openapi/loader"
	pkgopenapi "github.com/goliatone/go-formbind/pkg/openapi"
	"github.com/goliatone/go-formbind/pkg/orchestrator"
	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/renderers/vanilla"
	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/submission"
	theme "github.com/goliatone/go-theme"
)

// Orchestrator aliases the pipeline entry point.
type Orchestrator = orchestrator.Orchestrator

// Option configures orchestrator construction.
type Option = orchestrator.Option

// Request names a form and carries per-request render and decode inputs.
type Request = orchestrator.Request

// RenderOptions describes per-request overrides renderers receive: submit
// metadata, prefill values, validation errors, hidden fields, theme.
type RenderOptions = render.Options

// Subset selects a slice of a form model for partial rendering.
type Subset = render.Subset

// FlatMap is the ordered flat key/value payload of a form submission.
type FlatMap = submission.FlatMap

// New constructs an orchestrator; see pkg/orchestrator for the full option
// surface.
func New(options ...Option) (*Orchestrator, error) {
	return orchestrator.New(options...)
}

// Must panics when New fails. Useful for package-level wiring.
func Must(options ...Option) *Orchestrator {
	return orchestrator.MustNew(options...)
}

// RenderHTML renders a schema in one call using a throwaway orchestrator.
// Callers rendering repeatedly should construct an Orchestrator instead.
func RenderHTML(ctx context.Context, s *schema.Schema, options ...Option) ([]byte, error) {
	orch, err := orchestrator.New(options...)
	if err != nil {
		return nil, err
	}
	return orch.Render(ctx, Request{Schema: s})
}

// DecodeBody reconstructs a URL-encoded submission against a schema in one
// call using a throwaway orchestrator.
func DecodeBody(s *schema.Schema, body string, options ...Option) (map[string]any, error) {
	orch, err := orchestrator.New(options...)
	if err != nil {
		return nil, err
	}
	return orch.Decode(Request{Schema: s, Body: body})
}

// ParseEncoded parses a URL-encoded form body into a FlatMap, preserving
// wire order.
func ParseEncoded(body string) (*FlatMap, error) {
	return submission.ParseEncoded(body)
}

// NewFlatMap returns an empty FlatMap for programmatic submissions.
func NewFlatMap() *FlatMap {
	return submission.NewFlatMap()
}

// NewDocumentLoader constructs an OpenAPI document loader, keeping the
// concrete implementation hidden behind the pkg/openapi contract.
func NewDocumentLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalloader.New(pkgopenapi.NewLoaderOptions(options...))
}

// WithThemeSelector passes a go-theme selector through to the orchestrator
// so theme/variant choices resolve ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeDefaults sets the theme name and variant used when a request does
// not name its own.
func WithThemeDefaults(name, variant string) Option {
	return orchestrator.WithThemeDefaults(name, variant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so
// callers can reuse or extend them without importing the renderer package.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
