// Package tlssig implements the TLSSig v2 token construction pipeline:
// canonical field serialization, keyed authentication, record encoding,
// compression and transport-safe text encoding.
//
// Every function in this package is pure; the caller supplies the issuance
// time and the signing key. Field names, field order, the seconds time unit
// and the three-character base64 substitution are all fixed by the verifier's
// wire contract and must not be changed.
package tlssig
