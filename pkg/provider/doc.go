// Package provider defines the contract every user agent parser adapter
// implements and the common result model the benchmark stores.
//
// An adapter calls its parser library and maps the answer onto Result. The
// runner never looks at library types; it reads the eleven evaluated Columns
// through Result.Value and hands each to the harmonizer selected by the
// column's field tag.
//
//	res, err := provider.Measure(ctx, p, ua)
//	switch {
//	case errors.Is(err, provider.ErrNoResult):
//		// stored as an unresolved result
//	case err != nil:
//		// adapter failure, logged and skipped
//	}
//	name := res.Value(provider.ColumnBrowserName)
//
// Measure records the parse time and drops version strings that carry no
// information ("0.0.0", "..."), so all adapters are normalized the same way.
package provider
