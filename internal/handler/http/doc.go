// Package http implements the JSON API transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the catalog,
// loan and account endpoints. Cross-cutting concerns such as authentication,
// request tracing, access logging and response compression are handled in
// this package before requests are delegated to the service layer.
package http
