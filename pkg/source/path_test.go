package source_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/source"
)

func TestPath(t *testing.T) {
	t.Parallel()

	t.Run("custom extractor", func(t *testing.T) {
		t.Parallel()
		params := map[string]string{"id": "123", "slug": ""}
		req := httptest.NewRequest(http.MethodGet, "/items/123", nil)
		src := source.Path(req, func(r *http.Request, name string) string {
			return params[name]
		})

		v, ok := src.Get("id")
		assert.True(t, ok)
		assert.Equal(t, "123", v)
		assert.False(t, src.Has("slug"), "empty path value counts as missing")
		assert.False(t, src.Has("other"))
	})

	t.Run("nil extractor panics", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Panics(t, func() { source.Path(req, nil) })
	})
}

func TestChiPath(t *testing.T) {
	t.Parallel()

	var (
		id    string
		found bool
		age   int
	)
	r := chi.NewRouter()
	r.Get("/users/{id}/age/{age}", func(w http.ResponseWriter, req *http.Request) {
		params := source.New(source.ChiPath(req))
		id, found = params.Text("id").Value(), params.Has("id")
		n, err := params.Int("age")
		require.NoError(t, err)
		age = n.Value()
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/u-1/age/37", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, found)
	assert.Equal(t, "u-1", id)
	assert.Equal(t, 37, age)
}
