package tlssig

// Version is the protocol version tag embedded in every signature record.
// It identifies the token format expected by the verifier.
const Version = "2.0"

// SignRequest carries the per-call fields bound into a user signature.
// It is constructed fresh for each signing call and discarded once the
// token string has been produced.
type SignRequest struct {
	// Identifier is the user identifier being signed. Any string is
	// accepted, including the empty string.
	Identifier string

	// IssuedAt is the issuance time in seconds since the Unix epoch.
	IssuedAt int64

	// Expire is the signature lifetime in seconds. Non-positive values
	// are passed through and produce an already-expired signature.
	Expire int64

	// UserBuf is an optional opaque payload. A nil slice means no payload:
	// the payload line and record field are omitted entirely. A non-nil
	// empty slice is a present, empty payload.
	UserBuf []byte
}
