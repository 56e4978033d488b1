// Package tools exposes the operation catalog as MCP tools.
//
// Each operation descriptor becomes one tool whose input schema is derived
// from the declared arguments. A tool call is forwarded to the dispatcher and
// the resulting envelope is returned as a single JSON text content item;
// failure envelopes set isError on the result.
package tools
