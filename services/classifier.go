package services

import (
	"context"
	"math/rand"
	"sync"

	"github.com/JabirC/Closet/core"
)

// Classifier suggests a category and tags for an uploaded image.
type Classifier interface {
	Classify(ctx context.Context, imageURL string) (core.Classification, error)
}

// suggestionTags is the pool the placeholder classifier draws from, in order.
var suggestionTags = []string{"casual", "formal", "summer", "winter", "cotton", "denim"}

// randomClassifier is a stand-in until a real vision model is wired: it picks a
// random category and the first one to three pool tags, ignoring the image.
type randomClassifier struct {
	mu  sync.Mutex // *rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

func NewRandomClassifier(seed int64) Classifier {
	return &randomClassifier{rng: rand.New(rand.NewSource(seed))}
}

func (c *randomClassifier) Classify(_ context.Context, _ string) (core.Classification, error) {
	c.mu.Lock()
	cat := core.Categories[c.rng.Intn(len(core.Categories))]
	n := 1 + c.rng.Intn(3)
	c.mu.Unlock()

	tags := make([]string, n)
	copy(tags, suggestionTags[:n])
	return core.Classification{Category: cat, Tags: tags}, nil
}
