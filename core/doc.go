// Package core defines the shared types used across scopelog.
//
// It provides the Level type that selects a render channel and the Entry
// type that carries a single buffered log event from a Logger to a
// Handler.
//
// Entry objects handed to handlers are pooled via sync.Pool. The logger
// gets an Entry with GetEntry, passes it to the handler, and returns it
// with PutEntry once Handle has returned. Handlers must not retain the
// pointer past Handle.
package core
