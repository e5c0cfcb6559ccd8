package appointment

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// CompletionCodeTTL is how long a completion code stays valid after
// generation.
const CompletionCodeTTL = 15 * time.Minute

// GenerateCompletionCode returns a 6-digit numeric code drawn uniformly
// from [100000, 999999].
func GenerateCompletionCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
