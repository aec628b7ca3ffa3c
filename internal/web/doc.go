// Package web wires the HTTP surface: the streaming websocket route, the
// option REST endpoints, and the catch-all rejection for unknown websocket
// paths.
package web
