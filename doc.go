// Package usersig issues short-lived user signatures for realtime
// communication backends.
//
// A user signature is a compact, URL-safe token that binds an application
// id, a user identifier, an issuance time, an expiry duration and an
// optional opaque payload, authenticated with HMAC-SHA256 under a shared
// secret. The verifier service holding the same secret decodes the token
// and recomputes the digest to accept or reject it.
//
// The Signer in this package owns the application credentials and the
// wall-clock time source; the byte-level pipeline lives in pkg/tlssig and
// is pure, so the exact wire behavior can be tested with pinned timestamps.
//
// # Overview of Packages
//
//   - usersig - The SDK entry point: the Signer, key rotation and options
//   - pkg/tlssig - The token construction pipeline and its wire contract
package usersig
