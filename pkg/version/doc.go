// Package version turns the free-text version strings reported by user agent
// parsers into comparable values.
//
// Two independent views are provided:
//
//   - Version, a structured value (major, minor, patch, alias) whose Complete
//     representation is always re-derived from its parts. Parts can be set one
//     by one, or hydrated at once from a raw string with SetComplete.
//   - Harmonize, a coarse "major.minor" reduction used when comparing the
//     answers of different parsers, so that "10.2.5" and "10.2.9 beta" are
//     considered the same version.
//
// # Usage
//
//	var v version.Version
//	v.SetComplete("Leopard 10.5.8")
//	v.Major()    // "10"
//	v.Minor()    // "5"
//	v.Patch()    // "8"
//	v.Alias()    // "Leopard"
//	v.Complete() // "Leopard - 10.5.8"
//
//	version.Harmonize("10.2.9 beta") // "10.2"
//	version.Harmonize("7")           // "7.0"
//
// An empty string means "absent" everywhere in this package. Values that carry
// no real signal, such as "0.0.0", are treated as absent.
package version
