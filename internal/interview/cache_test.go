package interview

import (
	"testing"
	"time"
)

func TestQuestionCache_SetGet(t *testing.T) {
	c := NewQuestionCache(time.Minute)

	questions := []Question{{Number: 1, Text: "q", Expected: "e"}}
	c.Set("resume-1", "Backend Developer", 5, questions)

	got, ok := c.Get("resume-1", "Backend Developer", 5)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Text != "q" {
		t.Errorf("got %+v", got)
	}

	// Different count is a different key.
	if _, ok := c.Get("resume-1", "Backend Developer", 3); ok {
		t.Error("unexpected hit for different question count")
	}
}

func TestQuestionCache_Expiry(t *testing.T) {
	c := NewQuestionCache(time.Millisecond)
	c.Set("resume-1", "Data Scientist", 5, []Question{{Number: 1, Text: "q"}})

	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("resume-1", "Data Scientist", 5); ok {
		t.Error("expected expired entry to miss")
	}

	c.CleanExpired()
	c.mu.RLock()
	n := len(c.entries)
	c.mu.RUnlock()
	if n != 0 {
		t.Errorf("CleanExpired left %d entries", n)
	}
}

func TestQuestionCache_Clear(t *testing.T) {
	c := NewQuestionCache(time.Minute)
	c.Set("resume-1", "Product Manager", 5, []Question{{Number: 1, Text: "q"}})
	c.Clear()

	if _, ok := c.Get("resume-1", "Product Manager", 5); ok {
		t.Error("expected miss after Clear")
	}
}
