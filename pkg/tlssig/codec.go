package tlssig

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
)

var (
	textEscaper   = strings.NewReplacer("+", "*", "/", "-", "=", "_")
	textUnescaper = strings.NewReplacer("*", "+", "-", "/", "_", "=")
)

// Compress deflates the record bytes with a zlib wrapper at the best
// compression level. The compressed bytes are deterministic for this
// implementation but not across DEFLATE implementations; only the
// round-trip through Decompress is contractual.
func Compress(record []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("unable to create compressor: %w", err)
	}
	if _, err := zw.Write(record); err != nil {
		return nil, fmt.Errorf("unable to compress record: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("unable to flush compressor: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates data produced by Compress, returning the record bytes.
func Decompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	defer func() { _ = zr.Close() }()

	record, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	return record, nil
}

// EncodeText maps compressed bytes to the transport-safe token alphabet:
// standard base64 with padding, then '+' to '*', '/' to '-' and '=' to '_'.
// This is not the RFC 4648 URL-safe variant; the three substitutions are
// fixed by the verifier and must be reversed before base64 decoding.
func EncodeText(data []byte) string {
	return textEscaper.Replace(base64.StdEncoding.EncodeToString(data))
}

// DecodeText reverses EncodeText.
func DecodeText(token string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(textUnescaper.Replace(token))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return data, nil
}
