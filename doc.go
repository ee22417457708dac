// Package negotiate implements a content-negotiation engine for HTTP
// servers (RFC 9110 §12.5.1): given a set of media types a server is
// willing to produce and a client's Accept header, it selects the single
// media type the server should respond with, or reports that no acceptable
// representation exists.
//
// The parser, precedence sorter, and matcher are pure functions over their
// inputs and may be called concurrently from any number of goroutines. The
// only mutable state is the per-Matcher cache, which Select makes safe for
// concurrent use on its own.
//
// See accept for the header parser and precedence sorter, digest for the
// server-type preprocessing, cache for the bounded matcher cache, and
// httpnegotiate for an optional net/http middleware built on this package.
package negotiate
