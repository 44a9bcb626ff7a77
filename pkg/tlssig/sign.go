package tlssig

import (
	"fmt"
)

// Generate runs the full construction pipeline for a single request:
// canonical serialization, keyed digest, record encoding, compression and
// text encoding. It is deterministic for fixed inputs.
func Generate(key []byte, appID uint64, req *SignRequest) (string, error) {
	digest := Digest(key, Canonical(appID, req))
	record := Record(appID, req, digest)

	compressed, err := Compress(record)
	if err != nil {
		return "", fmt.Errorf("unable to compress signature record: %w", err)
	}

	return EncodeText(compressed), nil
}

// Decode reverses the text encoding and compression steps of a token and
// returns the embedded record JSON. It does not check the signature inside
// the record; that is the verifier's job.
func Decode(token string) ([]byte, error) {
	compressed, err := DecodeText(token)
	if err != nil {
		return nil, err
	}
	return Decompress(compressed)
}
