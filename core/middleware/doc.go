// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation protecting the catalog endpoints.
//   - rayid: tags every request with a ray ID in the locals and response headers,
//     picked up by logger.WithRayID for tracing.
//
// Both are registered globally in the start command.
package middleware
