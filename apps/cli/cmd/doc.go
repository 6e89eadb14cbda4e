// Package cmd implements the httpie CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request and print the response
//   - post: Send key=value pairs as a JSON object and print the response
//   - version: Show httpie version information
//   - completion: Generate shell completion scripts
//
// Every failure is printed to stderr and mapped to a non-zero exit code.
package cmd
