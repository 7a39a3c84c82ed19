// Package ids allocates the stable keys used for notebooks and notes.
package ids

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	StrategyTimestamp = "timestamp"
	StrategyUUID      = "uuid"
)

type Generator interface {
	Next() string
}

// TimestampGenerator emits "<unix-ms>-<seq>". The sequence restarts each
// millisecond, so ids requested within the same millisecond still differ.
type TimestampGenerator struct {
	mu     sync.Mutex
	now    func() time.Time
	lastMS int64
	seq    int
}

func NewTimestampGenerator(now func() time.Time) *TimestampGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimestampGenerator{now: now}
}

func (g *TimestampGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms > g.lastMS {
		g.lastMS = ms
		g.seq = 0
	} else {
		// same millisecond, or the clock stepped back
		g.seq++
	}
	return strconv.FormatInt(g.lastMS, 10) + "-" + strconv.Itoa(g.seq)
}

type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func New(strategy string) Generator {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategyUUID:
		return UUIDGenerator{}
	default:
		return NewTimestampGenerator(nil)
	}
}
