// Package logger is the public API of scopelog. Most users only need to
// import this package.
//
// A Logger buffers entries instead of rendering them right away. Entries
// live in a stack of groups; Branch pushes a group for a unit of work and
// pops it when the work returns, so entries of a branch that succeeded
// quietly are dropped without ever being rendered:
//
//	err := log.Branch(func() error {
//	    log.Info("fetch", "GET /users")
//	    return fetch()
//	})
//
// When the work fails, the error goes through Error, which records it,
// marks it handled and calls Write. Write renders everything still
// pending, so the failing branch's info and warning entries surface
// together with the error that ended it.
//
// Loggers form a tree through ChildLogger. A child keeps its own entries,
// but Write always flushes the ancestors first, so output reads top-down.
// Errors are deduplicated by identity: an error logged by a child is also
// marked handled on its parent, so when the same value bubbles up through
// the parent's own Branch or Error it is not rendered a second time.
//
// The handled set does not keep errors alive. Once an error is
// unreachable it may be collected even though the logger still counts it
// as handled.
//
// A Logger is safe for concurrent use. Branch work runs without any lock
// held.
package logger
