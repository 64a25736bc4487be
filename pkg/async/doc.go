// Package async runs functions concurrently and collects their results
// through generic futures.
//
//	futures := make([]*async.Future[provider.Result], len(providers))
//	for i, p := range providers {
//		futures[i] = async.Async(ctx, ua, p.Parse)
//	}
//	results, err := async.WaitAll(ctx, futures...)
//
// WaitAll keeps results in input order and joins every error, so one failing
// function does not hide the results of the others.
package async
