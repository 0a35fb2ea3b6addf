// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging and response compression are handled in this package. Request
// bodies are decoded and validated here before being delegated to the
// service layer, and service errors are translated to HTTP statuses only
// here (see errors_mapper.go).
package http
