package memory

import (
	"time"

	"ai-medtutor-be/pkg/tutor/assessment"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CaseSessionEntry holds one learner's in-progress case attempt. The entry
// is owned by the single interaction that created it; abandoned attempts
// age out of the cache.
type CaseSessionEntry struct {
	Id        string
	UserId    uuid.UUID
	CaseId    string
	Session   *assessment.Session
	StartedAt time.Time
}

type CaseSessionRepository struct {
	cache *cache.Cache
}

func NewCaseSessionRepository() *CaseSessionRepository {
	// Sessions expire after an hour of inactivity, purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CaseSessionRepository{
		cache: c,
	}
}

func (r *CaseSessionRepository) Save(entry *CaseSessionEntry) {
	r.cache.Set(entry.Id, entry, cache.DefaultExpiration)
}

func (r *CaseSessionRepository) Get(sessionId string) (*CaseSessionEntry, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*CaseSessionEntry), true
	}
	return nil, false
}

func (r *CaseSessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
