// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Rate limiting, CORS, request tracing, access logging and
// authentication are handled in this package before requests are delegated
// to the service layer. Every error response carries a {"message": ...} body.
package http
