/*
Package server exposes the asset search pipeline to clients.

Two transports share the same pipeline: an HTTP API for browsers and
dashboards, and a msgpack IPC loop over stdin/stdout for editor plugins and
other local processes that want to skip HTTP.

# HTTP

All routes answer with status 200, a JSON body, Content-Type
application/json and an Access-Control-Allow-Origin header:

	GET /api/search?q=bit&type=crypto   ranked matches, at most 50
	GET /api/recommend?type=stock       top 5 by score
	GET /api/stats                      catalog summary
	GET /api/health                     liveness and catalog size

Any other path gets {"error":"Not found"}.

# IPC

Clients write msgpack maps to stdin and read one msgpack map per request
from stdout. The server writes {"status": "ready"} once before reading.

	{"id": "q1", "cmd": "search", "q": "bit", "type": "crypto"}
	{"id": "q2", "cmd": "recommend", "type": "stock"}
	{"id": "q3", "cmd": "stats"}
	{"id": "q4", "cmd": "health"}

Search and recommend replies carry the same asset objects as the HTTP API:

	{"id": "q1", "a": [{"name": "Bitcoin", "symbol": "BTC", ...}], "c": 1, "t": 41}

t is the time spent in the pipeline in microseconds. Failures reply with
{"id": ..., "e": message, "c": code} and the loop keeps reading; only a
stream that can no longer be framed ends it.
*/
package server

import (
	"errors"

	"github.com/bastiangx/assetserve/pkg/present"
)

// ErrUnknownCommand is reported for IPC requests with an unsupported cmd.
var ErrUnknownCommand = errors.New("unknown command")

// Request is a single IPC request.
type Request struct {
	ID      string `msgpack:"id"`
	Command string `msgpack:"cmd"`
	Query   string `msgpack:"q,omitempty"`
	Type    string `msgpack:"type,omitempty"`
}

// AssetsResponse answers search and recommend.
type AssetsResponse struct {
	ID        string              `msgpack:"id"`
	Assets    []present.AssetView `msgpack:"a"`
	Count     int                 `msgpack:"c"`
	TimeTaken int64               `msgpack:"t"`
}

// StatsResponse answers stats.
type StatsResponse struct {
	ID        string            `msgpack:"id"`
	Stats     present.StatsView `msgpack:"s"`
	TimeTaken int64             `msgpack:"t"`
}

// HealthResponse answers health.
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Assets int    `msgpack:"assets"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
