// Package clientip resolves the address of the client behind proxies and
// exposes it through the request context and log records.
//
// Only put headers in front of RemoteAddr that your edge proxy overwrites;
// clients can send any of them.
package clientip
