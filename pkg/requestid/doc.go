// Package requestid tags every request with a correlation ID taken from the
// X-Request-ID header or generated, and exposes it to handlers and logs.
package requestid
