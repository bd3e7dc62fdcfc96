package source

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PathExtractor returns the value of a named path parameter, or "" when unset.
type PathExtractor func(r *http.Request, name string) string

type path struct {
	r         *http.Request
	extractor PathExtractor
}

// Path exposes router path parameters through extractor. Routers report unset
// parameters as "", so an empty path segment counts as missing.
//
// Example with gorilla/mux:
//
//	src := source.Path(r, func(r *http.Request, name string) string {
//		return mux.Vars(r)[name]
//	})
func Path(r *http.Request, extractor PathExtractor) Source {
	if extractor == nil {
		panic(fmt.Errorf("%w: extractor function is nil", ErrInvalidPath))
	}
	return &path{r: r, extractor: extractor}
}

// ChiPath exposes the URL parameters of a chi route.
//
//	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//		params := source.New(source.ChiPath(r))
//		id, err := params.UUID("id")
//		...
//	})
func ChiPath(r *http.Request) Source {
	return Path(r, chi.URLParam)
}

func (p *path) Has(name string) bool {
	return p.extractor(p.r, name) != ""
}

func (p *path) Get(name string) (string, bool) {
	v := p.extractor(p.r, name)
	if v == "" {
		return "", false
	}
	return v, true
}
