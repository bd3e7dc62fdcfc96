// Package messages renders check failures from package param as localized
// text.
//
// A Catalog maps a language and a translation key ("validation.not_in") to a
// template with %{name} placeholders, filled from the failure's
// TranslationValues. English and German templates are built in; WithYAML
// adds or overrides templates:
//
//	fr:
//	  validation:
//	    present: "est obligatoire"
//
// Range checks with an exclusive bound first look up "<key>_exclusive".
// A missing template falls back to the default language and finally to the
// failure's English Message.
//
//	catalog, err := messages.New(ctx)
//	lang := catalog.Negotiate(r.Header.Get("Accept-Language"))
//
//	var errs param.Errors
//	params := source.New(src, source.WithCallbacks(catalog.Callback(lang, &errs)))
package messages
