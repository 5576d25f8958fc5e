package interview

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"
)

// QuestionCache provides simple in-memory caching of generated question
// sets, so repeating a round for the same resume, role and count does not
// burn another model call.
type QuestionCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	questions []Question
	timestamp time.Time
}

// NewQuestionCache creates a new cache with specified TTL
func NewQuestionCache(ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get retrieves cached questions if available and not expired
func (c *QuestionCache) Get(resumeID, role string, count int) ([]Question, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[c.generateKey(resumeID, role, count)]
	if !exists {
		return nil, false
	}

	if time.Since(entry.timestamp) > c.ttl {
		return nil, false
	}

	return entry.questions, true
}

// Set stores questions in cache
func (c *QuestionCache) Set(resumeID, role string, count int, questions []Question) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[c.generateKey(resumeID, role, count)] = &cacheEntry{
		questions: questions,
		timestamp: time.Now(),
	}
}

// Clear removes all cache entries
func (c *QuestionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// CleanExpired removes expired entries (call periodically)
func (c *QuestionCache) CleanExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.entries, key)
		}
	}
}

func (c *QuestionCache) generateKey(resumeID, role string, count int) string {
	hash := md5.Sum([]byte(fmt.Sprintf("%s|%s|%d", resumeID, role, count)))
	return fmt.Sprintf("%x", hash)
}
