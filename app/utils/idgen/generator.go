package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
)

// GenerateSecureID generates a cryptographically secure ID with the given prefix and length
func GenerateSecureID(prefix string, length int) (string, error) {
	// The byte length required is about 3/4 of the desired string length.
	// We add 2 to be safe and avoid rounding issues or insufficient bytes.
	byteLength := (length * 3 / 4) + 2
	bytes := make([]byte, byteLength)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	encoded := base64.URLEncoding.EncodeToString(bytes)
	encoded = strings.TrimRight(encoded, "=")

	if len(encoded) > length {
		encoded = encoded[:length]
	}

	return fmt.Sprintf("%s_%s", prefix, encoded), nil
}

// GenerateNumericCode generates a uniformly random numeric code of the given
// number of digits, zero-padded (leading zeros allowed).
func GenerateNumericCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
