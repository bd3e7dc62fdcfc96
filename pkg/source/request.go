package source

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// Request picks the sources matching the request body: JSON or form fields
// first, then the query string. Requests without a body use the query string
// only.
func Request(r *http.Request, cfg Config) (Source, error) {
	query := Query(r)

	contentType := r.Header.Get("Content-Type")
	if contentType == "" || !hasBody(r) {
		return query, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch {
	case mediaType == "application/json":
		body, err := JSONWithLimit(r, cfg.JSONMaxSize)
		if err != nil {
			return nil, err
		}
		return Chain(body, query), nil

	case mediaType == "application/x-www-form-urlencoded", strings.HasPrefix(mediaType, "multipart/form-data"):
		body, err := FormWithLimit(r, cfg.FormMaxMemory)
		if err != nil {
			return nil, err
		}
		return Chain(body, query), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func hasBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return r.ContentLength > 0
	}
	return true
}
