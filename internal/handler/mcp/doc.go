// Package mcp exposes the budget repository as a set of MCP tools served
// over the stdio transport.
//
// The tool layer is deliberately thin: it parses and validates arguments,
// resolves the target budget, delegates to the repository (or, for budgets
// other than the configured default, straight to the remote adapter), shapes
// the result into JSON-friendly views with decimal amount strings, and
// paginates. All sync and caching behaviour lives in the service layer.
package mcp
