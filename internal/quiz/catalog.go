package quiz

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("quiz not found")

// Catalog holds the quizzes a process serves, in insertion order.
type Catalog struct {
	mu      sync.RWMutex
	quizzes map[string]Quiz
	order   []string
}

func NewCatalog(qs ...Quiz) *Catalog {
	c := &Catalog{quizzes: map[string]Quiz{}}
	for _, q := range qs {
		c.Put(q)
	}
	return c
}

// Put adds or replaces a quiz. Replacing keeps its original position.
func (c *Catalog) Put(q Quiz) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.quizzes[q.ID]; !ok {
		c.order = append(c.order, q.ID)
	}
	c.quizzes[q.ID] = q
}

func (c *Catalog) Get(id string) (Quiz, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.quizzes[id]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	return q, nil
}

// Public returns the learner view of a quiz.
func (c *Catalog) Public(id string) (View, error) {
	q, err := c.Get(id)
	if err != nil {
		return View{}, err
	}
	return q.Public(), nil
}

func (c *Catalog) List() []Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Summary, 0, len(c.order))
	for _, id := range c.order {
		q := c.quizzes[id]
		out = append(out, Summary{ID: q.ID, Title: q.Title, Questions: len(q.Questions)})
	}
	return out
}
