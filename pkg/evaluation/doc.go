// Package evaluation scores how user agent parsers agree with each other.
//
// Two evaluations are provided, both pure functions of their inputs:
//
//   - Result (pairwise): one parser's value for a field against the values of
//     every other parser for the same user agent. It counts literal matches and
//     matches after harmonization.
//   - UserAgent (aggregate): every parser's value for a field of one user agent.
//     It counts contributing parsers, distinct values and the size of the
//     largest group of identical values, both raw and harmonized.
//
// Values for one (user agent, field) pair usually arrive as a single string
// joined with Separator, as produced by SQL aggregation. Split recovers the
// ordered sequence; a nil joined string means no contributing rows.
//
// # Usage
//
//	ev := evaluation.New()
//	res := ev.Result(harmonize.BrowserName, "Chrome", evaluation.Split(&others))
//	res.SameResultCount           // literal matches
//	res.HarmonizedSameResultCount // matches after harmonization
//
//	agg := ev.UserAgent(harmonize.BrowserName, evaluation.Split(&all))
//	agg.MaxSameResultCount
//	agg.HarmonizedMaxSameResultCount
//
// An empty string is a regular value: parsers that produced no answer count as
// agreeing with each other.
package evaluation
