package messages

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/param"
)

// DefaultLanguage is used when no language is requested or matched.
const DefaultLanguage = "en"

// maxAcceptLanguageLength keeps oversized Accept-Language headers from being parsed in full.
const maxAcceptLanguageLength = 4096

//go:embed locales/*.yaml
var locales embed.FS

// Catalog renders failure messages in several languages.
type Catalog struct {
	templates   map[string]map[string]string
	defaultLang string
	langs       []string
	matcher     language.Matcher
	logger      *slog.Logger

	missingMu sync.Mutex
	missing   map[string]struct{}
}

// Option configures a Catalog.
type Option func(*options)

type options struct {
	documents   [][]byte
	defaultLang string
	logger      *slog.Logger
}

// WithYAML adds a YAML document. Its templates override the built-in ones
// key by key; new languages are added.
func WithYAML(content []byte) Option {
	return func(o *options) {
		if len(content) > 0 {
			o.documents = append(o.documents, content)
		}
	}
}

// WithDefaultLanguage sets the language used as fallback. It must exist in the catalog.
func WithDefaultLanguage(lang string) Option {
	return func(o *options) {
		if lang != "" {
			o.defaultLang = normalizeLang(lang)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New loads the built-in catalog (en, de) and every WithYAML document.
func New(ctx context.Context, opts ...Option) (*Catalog, error) {
	o := options{defaultLang: DefaultLanguage, logger: logger.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	builtin, err := builtinDocuments()
	if err != nil {
		return nil, err
	}

	templates := make(map[string]map[string]string)
	for _, doc := range append(builtin, o.documents...) {
		parsed, err := parseYAML(ctx, doc)
		if err != nil {
			return nil, err
		}
		for lang, keys := range parsed {
			if templates[lang] == nil {
				templates[lang] = make(map[string]string, len(keys))
			}
			maps.Copy(templates[lang], keys)
		}
	}

	if _, ok := templates[o.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q", ErrLanguageNotSupported, o.defaultLang)
	}

	// the matcher falls back to its first tag, so the default language leads
	langs := slices.Sorted(maps.Keys(templates))
	langs = slices.DeleteFunc(langs, func(l string) bool { return l == o.defaultLang })
	langs = append([]string{o.defaultLang}, langs...)

	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %v", ErrInvalidCatalog, l, err)
		}
		tags = append(tags, tag)
	}

	c := &Catalog{
		templates:   templates,
		defaultLang: o.defaultLang,
		langs:       langs,
		matcher:     language.NewMatcher(tags),
		logger:      o.logger,
		missing:     make(map[string]struct{}),
	}
	c.logger.InfoContext(ctx, "message catalog loaded", slog.Any("languages", langs))
	return c, nil
}

func builtinDocuments() ([][]byte, error) {
	files, err := fs.Glob(locales, "locales/*.yaml")
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	docs := make([][]byte, 0, len(files))
	for _, name := range files {
		b, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		docs = append(docs, b)
	}
	return docs, nil
}

// Languages returns the catalog languages, default language first.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.langs)
}

func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Negotiate picks the best catalog language for an Accept-Language header.
// It returns the default language when nothing matches.
func (c *Catalog) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return c.defaultLang
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.langs[idx]
}

// Translate renders the failure in lang. Lookup order: lang, its base
// language, the default language, then the failure's own Message.
func (c *Catalog) Translate(lang string, f param.Failure) string {
	return c.translate(lang, f.TranslationKey, f.TranslationValues, f.Message)
}

// TranslateError is Translate for a collected error.
func (c *Catalog) TranslateError(lang string, e param.Error) string {
	return c.translate(lang, e.TranslationKey, e.TranslationValues, e.Message)
}

// Localize returns a copy of errs with every message rendered in lang.
func (c *Catalog) Localize(lang string, errs param.Errors) param.Errors {
	if errs == nil {
		return nil
	}
	out := make(param.Errors, len(errs))
	for i, e := range errs {
		e.Message = c.TranslateError(lang, e)
		out[i] = e
	}
	return out
}

// Callback collects failures into errs with messages rendered in lang.
func (c *Catalog) Callback(lang string, errs *param.Errors) param.Callback {
	return func(f param.Failure) {
		e := f.AsError()
		e.Message = c.Translate(lang, f)
		errs.Add(e)
	}
}

func (c *Catalog) translate(lang, key string, values map[string]any, fallback string) string {
	if key == "" {
		return fallback
	}
	keys := []string{key}
	if inclusive, ok := values["inclusive"].(bool); ok && !inclusive {
		keys = []string{key + "_exclusive", key}
	}

	for _, l := range c.candidates(lang) {
		for _, k := range keys {
			if tmpl, ok := c.templates[l][k]; ok {
				return render(tmpl, values)
			}
		}
	}

	c.logMissing(lang, key)
	return fallback
}

func (c *Catalog) candidates(lang string) []string {
	lang = normalizeLang(strings.ReplaceAll(lang, "_", "-"))
	out := make([]string, 0, 3)
	if lang != "" {
		out = append(out, lang)
		if idx := strings.Index(lang, "-"); idx > 0 {
			out = append(out, lang[:idx])
		}
	}
	if !slices.Contains(out, c.defaultLang) {
		out = append(out, c.defaultLang)
	}
	return out
}

// logMissing reports each missing key once per language.
func (c *Catalog) logMissing(lang, key string) {
	id := lang + "|" + key
	c.missingMu.Lock()
	_, seen := c.missing[id]
	if !seen {
		c.missing[id] = struct{}{}
	}
	c.missingMu.Unlock()
	if !seen {
		c.logger.Warn("missing message template", slog.String("lang", lang), slog.String("key", key))
	}
}
