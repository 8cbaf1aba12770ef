// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the MCP stdio transport and the optional ops
// HTTP server, including startup, signal handling, and graceful shutdown of
// all enabled transports. The process also exits when the MCP client closes
// stdin.
package server
