package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ReviewGateRepository remembers which flashcards a learner has already
// rated during the current study sitting so repeat submissions can be
// rejected without a database round trip.
type ReviewGateRepository struct {
	cache *cache.Cache
}

func NewReviewGateRepository() *ReviewGateRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ReviewGateRepository{
		cache: c,
	}
}

func gateKey(userId uuid.UUID, cardId string) string {
	return fmt.Sprintf("%s:%s", userId.String(), cardId)
}

func (r *ReviewGateRepository) Mark(userId uuid.UUID, cardId string) {
	r.cache.Set(gateKey(userId, cardId), struct{}{}, cache.DefaultExpiration)
}

func (r *ReviewGateRepository) Seen(userId uuid.UUID, cardId string) bool {
	_, found := r.cache.Get(gateKey(userId, cardId))
	return found
}

func (r *ReviewGateRepository) Reset(userId uuid.UUID) {
	for key := range r.cache.Items() {
		if len(key) > 37 && key[:36] == userId.String() {
			r.cache.Delete(key)
		}
	}
}
