package tlssig

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// Canonical builds the newline-delimited string the signature digest is
// computed over. The field order is fixed by the wire contract: identifier,
// app id, issuance time, expiry, then the base64 user payload only when one
// is present. Every included field is terminated by a newline.
func Canonical(appID uint64, req *SignRequest) string {
	var b strings.Builder
	b.WriteString("TLS.identifier:")
	b.WriteString(req.Identifier)
	b.WriteByte('\n')
	b.WriteString("TLS.sdkappid:")
	b.WriteString(strconv.FormatUint(appID, 10))
	b.WriteByte('\n')
	b.WriteString("TLS.time:")
	b.WriteString(strconv.FormatInt(req.IssuedAt, 10))
	b.WriteByte('\n')
	b.WriteString("TLS.expire:")
	b.WriteString(strconv.FormatInt(req.Expire, 10))
	b.WriteByte('\n')

	if req.UserBuf != nil {
		b.WriteString("TLS.userbuf:")
		b.WriteString(base64.StdEncoding.EncodeToString(req.UserBuf))
		b.WriteByte('\n')
	}

	return b.String()
}
