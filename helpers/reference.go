package helpers

import (
	"fmt"
	"math/rand"
	"time"
)

// NewOrderRef builds a customer-facing order reference of the form
// TZ<unix-millis><0-999>. Collisions are possible within one
// millisecond, so callers must verify against the store and retry.
func NewOrderRef() string {
	return fmt.Sprintf("TZ%d%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// NewOrderRefNano is the fallback after retries are exhausted: the
// nanosecond clock plus a random suffix keeps the TZ<digits> shape
// while making a repeat practically impossible.
func NewOrderRefNano() string {
	return fmt.Sprintf("TZ%d%03d", time.Now().UnixNano(), rand.Intn(1000))
}
