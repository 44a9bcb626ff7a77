package usersig

import (
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.chatkit.dev/usersig-sdk/pkg/tlssig"
)

// Signer issues user signatures for a single application.
//
// A Signer may be used from multiple goroutines: UpdateKey serializes
// against in-flight Sign calls so a signature is never computed with a
// half-rotated key.
type Signer struct {
	appID uint64
	clock clock.Clock
	log   zerolog.Logger

	mu  sync.RWMutex
	key []byte
}

// New creates a Signer for the specified application id and secret key.
//
// Any secret is accepted, including the empty string; signing with an empty
// key succeeds and yields a structurally valid but cryptographically
// worthless signature.
func New(appID uint64, secretKey string, options ...Option) *Signer {
	s := &Signer{
		appID: appID,
		clock: clock.New(),
		log:   zerolog.Nop(),
		key:   []byte(secretKey),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// UpdateKey replaces the signing key at runtime, for example after the
// current key has leaked. It takes effect for all subsequent Sign calls.
// Signatures already issued stay bound to the key active when they were
// produced; invalidating them is the verifier's concern.
func (s *Signer) UpdateKey(secretKey string) {
	s.mu.Lock()
	s.key = []byte(secretKey)
	s.mu.Unlock()
}

// Sign issues a user signature for identifier that expires after the given
// duration, using the current wall-clock time as the issuance time.
//
// Inputs are passed through unvalidated: an empty identifier or a
// non-positive duration still produces a token, one the verifier will treat
// as unknown or already expired.
func (s *Signer) Sign(identifier string, expire time.Duration) (string, error) {
	return s.signAt(identifier, s.clock.Now(), expire, nil)
}

// SignWithBuffer is Sign with an opaque user payload bound into the
// signature. The payload travels base64-encoded inside the token and is
// returned to the application by the verifier.
func (s *Signer) SignWithBuffer(identifier string, expire time.Duration, userBuf []byte) (string, error) {
	return s.signAt(identifier, s.clock.Now(), expire, userBuf)
}

// signAt is the deterministic pipeline behind Sign, with an explicit
// issuance time.
func (s *Signer) signAt(identifier string, issuedAt time.Time, expire time.Duration, userBuf []byte) (string, error) {
	req := &tlssig.SignRequest{
		Identifier: identifier,
		IssuedAt:   issuedAt.Unix(),
		Expire:     int64(expire / time.Second),
		UserBuf:    userBuf,
	}

	s.mu.RLock()
	key := s.key
	s.mu.RUnlock()

	s.log.Debug().
		Str("identifier", identifier).
		Int64("issued_at", req.IssuedAt).
		Int64("expire", req.Expire).
		Bool("has_userbuf", userBuf != nil).
		Msg("issuing user signature")

	token, err := tlssig.Generate(key, s.appID, req)
	if err != nil {
		return "", fmt.Errorf("unable to generate user signature: %w", err)
	}

	return token, nil
}
