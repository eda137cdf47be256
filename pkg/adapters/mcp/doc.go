// Package mcp exposes a gate registry to MCP clients.
//
// Tools: list_gates, describe_gate, authorize_transition.
// Resources: stategate://gates.
package mcp
