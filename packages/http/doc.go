// Package http sends the single request an httpie invocation describes.
//
// It wraps a resty client with:
//   - Configurable timeout and TLS verification
//   - Request building from parsed commands (GET, or POST with a JSON body)
//   - Fully buffered responses that keep the protocol version and all header values
//   - Transport failures reported as *RequestError
package http
