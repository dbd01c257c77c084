// Package id stamps calculation runs with time-sortable ULIDs so log lines
// from one run can be grouped.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator hands out monotonic ULIDs. It is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

// NewGenerator seeds a generator. A zero seed is replaced with one read from
// crypto/rand.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (g *Generator) New() ulid.ULID {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Only fails if the clock runs backwards past the monotonic window.
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy)
}

var std = NewGenerator(0)

// New returns a run ID from the package generator.
func New() string {
	return std.New().String()
}

// Time extracts the creation time of a run ID.
func Time(s string) (time.Time, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()).UTC(), nil
}
