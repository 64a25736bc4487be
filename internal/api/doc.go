// Package api exposes the stored benchmark results as a read-only JSON API.
//
// Routes:
//
//	GET /health                           readiness of the configured checks
//	GET /providers                        registered providers
//	GET /summary                          per provider and column agreement
//	GET /user-agents/{id}/evaluations     aggregate evaluations of one user agent
//
// Every response uses the envelope {"data": ..., "error": {"code", "message"}}.
package api
