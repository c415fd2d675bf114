package namegen

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	linkIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	linkIDLength   = 8
)

var adjectives = []string{
	"Brave", "Calm", "Cheerful", "Clever", "Curious",
	"Daring", "Gentle", "Happy", "Jolly", "Kind",
	"Lively", "Lucky", "Mighty", "Noble", "Proud",
	"Quick", "Quiet", "Silly", "Sneaky", "Witty",
}

var animals = []string{
	"Badger", "Bear", "Dolphin", "Eagle", "Falcon",
	"Fox", "Hedgehog", "Koala", "Lion", "Llama",
	"Otter", "Owl", "Panda", "Penguin", "Rabbit",
	"Raccoon", "Squirrel", "Tiger", "Wolf", "Zebra",
}

// Generator produces short link identifiers and anonymous display names.
// The random source is injected so tests can make it deterministic; a
// cryptographic source is not required, these values are not secrets.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// LinkID returns an 8-character identifier drawn uniformly from [a-z0-9].
// Collisions are left to the store's unique index; no retry here.
func (g *Generator) LinkID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(linkIDLength)
	for i := 0; i < linkIDLength; i++ {
		b.WriteByte(linkIDAlphabet[g.rng.Intn(len(linkIDAlphabet))])
	}
	return b.String()
}

// SenderName returns a display name of the form <Adjective><Animal><1-999>.
// It is regenerated for every message and is not a stable sender identity.
func (g *Generator) SenderName() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	adjective := adjectives[g.rng.Intn(len(adjectives))]
	animal := animals[g.rng.Intn(len(animals))]
	number := g.rng.Intn(999) + 1

	return adjective + animal + strconv.Itoa(number)
}
