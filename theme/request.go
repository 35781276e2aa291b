package theme

import (
	"net/http"
	"net/url"
)

// RequestContext gives the helper read access to the inbound request's path
// and query parameters. It is injected explicitly; the helper never reaches
// for global request state.
type RequestContext interface {
	// Path returns the request path, e.g. "/news/2024/launch". A query
	// string, if present, is ignored by the helper.
	Path() string

	// Query returns the request's query parameters.
	Query() url.Values
}

// httpRequestContext adapts *http.Request to RequestContext.
type httpRequestContext struct {
	r *http.Request
}

// FromHTTPRequest wraps a *http.Request as a RequestContext.
func FromHTTPRequest(r *http.Request) RequestContext {
	return httpRequestContext{r: r}
}

func (c httpRequestContext) Path() string { return c.r.URL.Path }

func (c httpRequestContext) Query() url.Values { return c.r.URL.Query() }

// StaticRequest is a plain-value RequestContext, convenient in tests and in
// non-HTTP entry points.
type StaticRequest struct {
	RequestPath string
	Params      url.Values
}

func (s StaticRequest) Path() string { return s.RequestPath }

func (s StaticRequest) Query() url.Values { return s.Params }
