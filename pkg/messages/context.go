package messages

import (
	"context"
	"net/http"
)

type langContextKey struct{}

// WithLanguage stores the negotiated language in ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langContextKey{}, lang)
}

// Language returns the language stored in ctx, or DefaultLanguage.
func Language(ctx context.Context) string {
	if lang, _ := ctx.Value(langContextKey{}).(string); lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Middleware negotiates the Accept-Language header against the catalog and
// stores the result in the request context.
func (c *Catalog) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := c.Negotiate(r.Header.Get("Accept-Language"))
		next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), lang)))
	})
}
