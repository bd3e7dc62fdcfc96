// Package source reads raw request parameters and converts them into checked
// values from package param.
//
// A Source is a plain name lookup. Implementations cover the query string,
// urlencoded and multipart form bodies, JSON object bodies, router path
// parameters (chi or any extractor), headers and static maps. Chain combines
// several sources; the first one that has a name wins, and Request picks the
// usual combination for an incoming request.
//
// An Adapter wraps a Source and returns typed checked values:
//
//	params := source.New(source.Query(r), source.WithCallbacks(param.Collect(&errs)))
//
//	page, err := params.Int("page")
//	if err != nil {
//		// missing or not an integer: *source.ConversionError
//	}
//	page.IsBetween(1, 100, true)
//
//	q := params.Text("q") // nil Text when the parameter is missing
//	if q.IsPresent() {
//		q.IsShorterThan(200)
//	}
//
// A missing parameter is never turned into an empty string. Probes (IsInt,
// IsTime, ...) use the same parsers as the getters and have no side effects.
package source
