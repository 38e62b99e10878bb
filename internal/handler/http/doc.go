// Package http implements the REST transport of the fuel-station dashboard.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, CORS, compression and session-token checks are
// handled here before requests are delegated to the service layer. Errors
// are answered as {"message": ...} with a status chosen per operation.
package http
