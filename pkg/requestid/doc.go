// Package requestid tags every API request with a correlation ID.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUID, stores it in the request context and echoes it in the
// response. Extractor adds it to log records written with that context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.Extractor))
//	r.Use(requestid.Middleware)
package requestid
