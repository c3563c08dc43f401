package usecases

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"time"
)

// idCounter starts at a random offset and rolls forward per generated ID.
var idCounter = newIDCounter()

func newIDCounter() *atomic.Uint64 {
	var c atomic.Uint64
	var b [8]byte
	if _, err := rand.Read(b[:]); err == nil {
		c.Store(binary.BigEndian.Uint64(b[:]))
	}
	return &c
}

// timestampID builds prefixed IDs like TXN<unix><suffix>. Unix seconds alone
// collide when two rows land in the same second, so a 5 digit rolling suffix
// keeps the IDs unique.
func timestampID(prefix string, t time.Time) string {
	return fmt.Sprintf("%s%d%05d", prefix, t.Unix(), idCounter.Add(1)%100000)
}
