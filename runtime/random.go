package runtime

import (
	"math/rand"
	"sync"

	"github.com/sergev/rlisp/lang"
)

type lockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandom returns a lang.Random seeded with seed that is safe for
// concurrent use.
func NewRandom(seed int64) lang.Random {
	return &lockedRandom{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRandom) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
