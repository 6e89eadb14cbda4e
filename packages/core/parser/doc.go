// Package parser turns command-line tokens into validated request commands.
//
// It provides:
//   - key=value pair parsing for POST bodies
//   - syntactic URL validation (no normalization, no scheme whitelist)
//   - the Command variants (Get, Post) consumed by the dispatcher
package parser
