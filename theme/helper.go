// Package theme provides the request-scoped helper surface themes build on:
// memoized custom-field option lookups, URL path segments, option element
// rendering, the AJAX wrapper flag, and content-filter unsubscription.
package theme

import (
	"context"
	"strings"

	"github.com/fingerpaintmarketing/themekit/cache"
)

// Cache namespaces used by the helper's memoized lookups.
const (
	nsFieldOptions = "field_options"
	nsPathSegments = "path_segments"
)

// FieldDefinition is the metadata a custom-field provider returns for a field
// id. Choices is nil or empty for fields without a selectable choice set.
type FieldDefinition struct {
	Label   string
	Type    string
	Choices map[string]string
}

// FieldProvider resolves custom-field metadata. Implementations wrap whatever
// field plugin or config source the site uses.
type FieldProvider interface {
	// FieldDefinition returns the definition for a field id. An unknown id
	// is not an error; implementations return a zero definition instead.
	FieldDefinition(ctx context.Context, fieldID string) (FieldDefinition, error)
}

// Helper is the per-request theme helper. It owns a request-scoped memo store,
// so repeated lookups within one request hit the producer exactly once. Build
// one Helper per inbound request and do not share it across goroutines.
type Helper struct {
	req    RequestContext
	fields FieldProvider
	memo   cache.Service
	keys   cache.KeySerializer
}

// NewHelper creates a helper for one request. A nil memo service gets a fresh
// request-scoped MemoStore; pass the shared service from cache.NewSharedService
// to keep field option sets warm across requests.
func NewHelper(req RequestContext, fields FieldProvider, memo cache.Service) *Helper {
	if memo == nil {
		memo = cache.NewMemoStore()
	}
	return &Helper{
		req:    req,
		fields: fields,
		memo:   memo,
		keys:   cache.NewDefaultKeySerializer(),
	}
}

// FieldOptions returns the selectable choices for a custom field, memoized per
// field id. An unknown field id yields an empty map, not an error.
func (h *Helper) FieldOptions(ctx context.Context, fieldID string) (map[string]string, error) {
	key := h.keys.SerializeKey(nsFieldOptions, fieldID)
	return cache.GetOrCompute(ctx, h.memo, key, func(ctx context.Context) (map[string]string, error) {
		def, err := h.fields.FieldDefinition(ctx, fieldID)
		if err != nil {
			return nil, err
		}
		if def.Choices == nil {
			return map[string]string{}, nil
		}
		return def.Choices, nil
	})
}

// Segments returns the ordered path segments of the current request: the path
// split on "/", empty components discarded, query string stripped. The parse
// is memoized for the life of the helper.
func (h *Helper) Segments() []string {
	key := h.keys.SerializeKey(nsPathSegments, h.req.Path())
	segments, err := cache.GetOrCompute(context.Background(), h.memo, key, func(ctx context.Context) ([]string, error) {
		return splitSegments(h.req.Path()), nil
	})
	if err != nil {
		return nil
	}
	return segments
}

// Segment returns the path segment at the given position, or ok=false when
// the index is out of range.
func (h *Helper) Segment(i int) (string, bool) {
	segments := h.Segments()
	if i < 0 || i >= len(segments) {
		return "", false
	}
	return segments[i], true
}

// UseWrapper reports whether the page wrapper should render. It is true
// unless the "ajax" query parameter is present and equals exactly "true";
// any other value, including "TRUE" or "1", keeps the wrapper.
func (h *Helper) UseWrapper() bool {
	return h.req.Query().Get("ajax") != "true"
}

func splitSegments(path string) []string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	var segments []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
