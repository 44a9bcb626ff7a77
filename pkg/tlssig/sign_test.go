package tlssig

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestGenerateDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	req := &SignRequest{Identifier: mockIdentifier, IssuedAt: mockIssuedAt, Expire: mockExpire, UserBuf: []byte("abc")}
	key := []byte(mockKey)

	token, err := Generate(key, mockAppID, req)
	c.Assert(err, qt.IsNil, qt.Commentf("got an error generating the token"))

	record, err := Decode(token)
	c.Assert(err, qt.IsNil, qt.Commentf("got an error decoding the token"))
	c.Assert(string(record), qt.Equals, string(Record(mockAppID, req, Digest(key, Canonical(mockAppID, req)))),
		qt.Commentf("decoded record does not match the encoder output"))

	c.Assert(json.Get(record, "TLS.ver").ToString(), qt.Equals, Version)
	c.Assert(json.Get(record, "TLS.identifier").ToString(), qt.Equals, mockIdentifier)
	c.Assert(json.Get(record, "TLS.sdkappid").ToUint64(), qt.Equals, mockAppID)
	c.Assert(json.Get(record, "TLS.time").ToInt64(), qt.Equals, mockIssuedAt)
	c.Assert(json.Get(record, "TLS.expire").ToInt64(), qt.Equals, mockExpire)
	c.Assert(json.Get(record, "TLS.userbuf").ToString(), qt.Equals, "YWJj")
	c.Assert(json.Get(record, "TLS.sig").ToString(), qt.Equals, mockSigWithBuf)
}

func TestGeneratePresenceToggling(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	key := []byte(mockKey)
	base := SignRequest{Identifier: mockIdentifier, IssuedAt: mockIssuedAt, Expire: mockExpire}
	withBuf := base
	withBuf.UserBuf = []byte("abc")

	plainToken, err := Generate(key, mockAppID, &base)
	c.Assert(err, qt.IsNil)
	bufToken, err := Generate(key, mockAppID, &withBuf)
	c.Assert(err, qt.IsNil)
	c.Assert(plainToken, qt.Not(qt.Equals), bufToken)

	plain, err := Decode(plainToken)
	c.Assert(err, qt.IsNil)
	c.Assert(json.Get(plain, "TLS.userbuf").LastError(), qt.IsNotNil,
		qt.Commentf("payload field must be absent when no payload was supplied"))
	c.Assert(json.Get(plain, "TLS.sig").ToString(), qt.Equals, mockSig)
}
