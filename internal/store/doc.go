// Package store persists benchmark runs: providers, user agents, parse
// results and their evaluations.
//
// Store is the contract the runner and the HTTP API depend on. Postgres is
// the production implementation on pgx; Memory keeps everything in process
// and serves tests and one-off local runs.
//
// Both implementations hand the evaluators their input the same way: the
// values of several results for one user agent joined with
// evaluation.Separator. A nil joined string means no resolved result
// contributed, and evaluation.Split turns it into an empty sequence.
// Unresolved results (the parser did not recognize the user agent) never
// contribute values.
package store
