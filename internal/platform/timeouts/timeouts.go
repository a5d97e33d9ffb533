// Package timeouts defines the timeouts shared by the site's HTTP surfaces.
// Keeping them together keeps the server, SSE streams and shutdown in step.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Telemetry caps the flush of pending spans when a binary exits.
const Telemetry = 5 * time.Second

// StreamHeartbeat is how often an idle server-sent event stream writes a
// comment line so proxies keep the connection open.
const StreamHeartbeat = 15 * time.Second

// CarouselIdle is how long a rendered carousel view may wait for its client
// to connect before it is evicted.
const CarouselIdle = 2 * time.Minute
