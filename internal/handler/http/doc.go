// Package http implements the REST transport of the hero API.
//
// It exposes route wiring, request handlers, and middleware. Authentication
// and role checks, request tracing, access logging, request metrics, and
// response caching are handled in this package before requests are delegated
// to the service layer. Every successful payload is wrapped in a
// models.Response envelope; failures are written as {"detail": ...}.
package http
