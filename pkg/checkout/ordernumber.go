package checkout

import (
	"fmt"
	"math/rand"
	"time"
)

const orderNumberPrefix = "HDR"

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// OrderNumber builds the human-readable order identifier:
// HDR-<unix millis>-<5 random base36 chars>. Uniqueness rests on the
// timestamp plus randomness; there is no collision check and the number is
// not a database key.
func OrderNumber() string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = base36Upper[rand.Intn(len(base36Upper))]
	}
	return fmt.Sprintf("%s-%d-%s", orderNumberPrefix, time.Now().UnixMilli(), suffix)
}
