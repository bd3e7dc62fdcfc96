package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseYAML parses a document of the form
//
//	<lang>:
//	  validation:
//	    <check>: <template>
//
// and flattens nested keys with dots ("validation.not_in").
func parseYAML(ctx context.Context, content []byte) (map[string]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrInvalidCatalog)
	}

	result := make(map[string]map[string]string, len(data))
	for lang, val := range data {
		lang = normalizeLang(lang)
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalog, lang, val)
		}
		flat := make(map[string]string)
		if err := flatten(flat, "", tree); err != nil {
			return nil, fmt.Errorf("%w: language %q: %v", ErrInvalidCatalog, lang, err)
		}
		result[lang] = flat
	}
	return result, nil
}

func flatten(dst map[string]string, prefix string, tree map[string]any) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case string:
			dst[key] = v
		case map[string]any:
			if err := flatten(dst, key, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: expected string or map, got %T", key, v)
		}
	}
	return nil
}

func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
