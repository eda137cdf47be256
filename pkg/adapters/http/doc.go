// Package http exposes a gate registry over a small JSON API built on chi.
//
// Routes:
//
//	GET  /healthz
//	GET  /metrics                                          (with WithMetrics)
//	GET  /gates
//	GET  /gates/{entity}/{attribute}
//	GET  /gates/{entity}/{attribute}/states?sorted=true
//	GET  /gates/{entity}/{attribute}/states/{state}/transitions
//	POST /gates/{entity}/{attribute}/authorize  {"from": "...", "to": "..."}
package http
