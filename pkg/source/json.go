package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON decodes a JSON object request body and exposes its top-level members.
//
// Strings are exposed as-is, numbers and booleans in their JSON text form
// ("42", "1.5", "true"), and nested objects or arrays as raw JSON. A member
// set to null counts as missing.
func JSON(r *http.Request) (Source, error) {
	return JSONWithLimit(r, DefaultMaxJSONSize)
}

// JSONWithLimit is JSON with a custom body size limit.
func JSONWithLimit(r *http.Request, maxSize int64) (Source, error) {
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	if maxSize <= 0 {
		maxSize = DefaultMaxJSONSize
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrInvalidJSON, err)
	}
	if int64(len(body)) > maxSize {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrInvalidJSON, maxSize)
	}

	return DecodeJSON(body)
}

// DecodeJSON builds a source from a JSON object document.
func DecodeJSON(body []byte) (Source, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw map[string]json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidJSON)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	out := make(map[string]string, len(raw))
	for name, msg := range raw {
		v, ok, err := jsonText(msg)
		if err != nil {
			return nil, fmt.Errorf("%w: member %q: %v", ErrInvalidJSON, name, err)
		}
		if ok {
			out[name] = v
		}
	}
	return Map(out), nil
}

// jsonText renders one member value; ok is false for null.
func jsonText(msg json.RawMessage) (string, bool, error) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false, nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false, err
		}
		return s, true, nil
	default:
		return string(trimmed), true, nil
	}
}
