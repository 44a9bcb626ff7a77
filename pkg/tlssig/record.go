package tlssig

import (
	"encoding/base64"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigDefault

// Record serializes the authenticated fields plus the digest into the
// signature record JSON. The stream writer preserves insertion order, which
// the wire contract fixes as: version, identifier, app id, expiry, issuance
// time, user payload when present, and the signature last. The output is
// byte-for-byte reproducible for identical inputs.
func Record(appID uint64, req *SignRequest, digest []byte) []byte {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("TLS.ver")
	stream.WriteString(Version)
	stream.WriteMore()
	stream.WriteObjectField("TLS.identifier")
	stream.WriteString(req.Identifier)
	stream.WriteMore()
	stream.WriteObjectField("TLS.sdkappid")
	stream.WriteUint64(appID)
	stream.WriteMore()
	stream.WriteObjectField("TLS.expire")
	stream.WriteInt64(req.Expire)
	stream.WriteMore()
	stream.WriteObjectField("TLS.time")
	stream.WriteInt64(req.IssuedAt)
	stream.WriteMore()
	if req.UserBuf != nil {
		stream.WriteObjectField("TLS.userbuf")
		stream.WriteString(base64.StdEncoding.EncodeToString(req.UserBuf))
		stream.WriteMore()
	}
	stream.WriteObjectField("TLS.sig")
	stream.WriteString(base64.StdEncoding.EncodeToString(digest))
	stream.WriteObjectEnd()

	// The stream's buffer is pooled, so hand back a copy.
	return append([]byte(nil), stream.Buffer()...)
}
