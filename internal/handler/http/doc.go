// Package http implements the operational HTTP surface of the application.
//
// It exposes route wiring, request handlers, and middleware for the health,
// status, and version endpoints. Cross-cutting concerns such as request
// tracing and access logging are handled in this package before requests are
// delegated to the repository.
//
// This surface is diagnostics only; all budget functionality is served over
// the MCP stdio transport.
package http
