// Package console is the interactive front end of the order manager.
//
// It reads operator input line by line, drives the order entry and
// fulfillment dialogs, and renders order reports. All state changes go
// through the command handlers; all reads go through the query handlers.
//
// Closed input is reported as ErrInputClosed. Malformed numbers are never
// fatal: the dialog explains what it expects and asks again.
package console
