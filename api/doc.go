// Package api represents all types associated with the Circle Developer-Controlled
// Wallets REST API.  It handles JSON packing and un-packing, through multiple inner
// types.
//
// Every endpoint wraps its payload in a { "data": ... } envelope; the types here
// are the payloads after the envelope has been stripped by the client.
//
// Quick links:
//
//   - [Circle API Reference] for an interactive OpenAPI documentation experience.
//
// [Circle API Reference]: https://developers.circle.com/api-reference/w3s
package api
