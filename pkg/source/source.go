package source

import (
	"net/http"
	"net/url"
)

// Source is a raw key/value parameter lookup.
//
// Get returns false when the parameter is missing. A parameter bound to the
// empty string is present.
type Source interface {
	Has(name string) bool
	Get(name string) (string, bool)
}

// Func adapts a lookup function to Source.
type Func func(name string) (string, bool)

func (f Func) Has(name string) bool {
	_, ok := f(name)
	return ok
}

func (f Func) Get(name string) (string, bool) {
	return f(name)
}

type values url.Values

// Values wraps url.Values. Only the first value of a multi-value key is used.
func Values(v url.Values) Source {
	return values(v)
}

func (v values) Has(name string) bool {
	vs, ok := v[name]
	return ok && len(vs) > 0
}

func (v values) Get(name string) (string, bool) {
	vs, ok := v[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

type mapSource map[string]string

// Map wraps a plain string map.
func Map(m map[string]string) Source {
	return mapSource(m)
}

func (m mapSource) Has(name string) bool {
	_, ok := m[name]
	return ok
}

func (m mapSource) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Query exposes the URL query parameters of r.
func Query(r *http.Request) Source {
	return Values(r.URL.Query())
}

type header http.Header

// Header exposes request headers; names are canonicalized like http.Header.Get.
func Header(r *http.Request) Source {
	return header(r.Header)
}

func (h header) Has(name string) bool {
	return len(http.Header(h).Values(name)) > 0
}

func (h header) Get(name string) (string, bool) {
	vs := http.Header(h).Values(name)
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

type chain []Source

// Chain combines sources; the first source that has a parameter wins.
// Nil sources are skipped.
func Chain(sources ...Source) Source {
	c := make(chain, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			c = append(c, s)
		}
	}
	return c
}

func (c chain) Has(name string) bool {
	for _, s := range c {
		if s.Has(name) {
			return true
		}
	}
	return false
}

func (c chain) Get(name string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Get(name); ok {
			return v, true
		}
	}
	return "", false
}
