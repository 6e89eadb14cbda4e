// Package output renders received HTTP responses for a terminal.
//
// A rendered response is, in order: the status line, every header as
// "Name: Value", a blank line, then the body. Bodies whose Content-Type
// essence is application/json are validated and re-indented; anything
// else is written verbatim.
package output
