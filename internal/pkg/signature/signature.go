package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Verification failures. Handlers map all of them to 401.
var (
	ErrMissingSignature = errors.New("missing signature header")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrStaleTimestamp   = errors.New("signed timestamp outside tolerance")
)

// Compute returns the hex HMAC-SHA256 of "<timestamp>.<body>" under secret.
// Providers sign the raw request body together with a unix timestamp so a
// captured payload cannot be replayed later.
func Compute(secret string, timestamp int64, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a webhook signature over the raw body before any payload
// parsing or state mutation. timestampHeader is the provider-sent unix
// seconds string; tolerance bounds how old the signed timestamp may be in
// either direction.
func Verify(secret, signatureHeader, timestampHeader string, body []byte, tolerance time.Duration, now time.Time) error {
	if signatureHeader == "" || timestampHeader == "" {
		return ErrMissingSignature
	}

	ts, err := strconv.ParseInt(timestampHeader, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}

	age := now.Sub(time.Unix(ts, 0))
	if age > tolerance || age < -tolerance {
		return ErrStaleTimestamp
	}

	expected := Compute(secret, ts, body)
	if !hmac.Equal([]byte(expected), []byte(signatureHeader)) {
		return ErrInvalidSignature
	}

	return nil
}
