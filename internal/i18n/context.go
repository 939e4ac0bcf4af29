package i18n

import (
	"slices"
	"sync"
)

// Context is the process-wide current language. Components read it at render
// time and may subscribe to be told when it changes.
type Context struct {
	mu     sync.RWMutex
	lang   Lang
	subs   map[int]func(Lang)
	nextID int
}

func NewContext(initial Lang) *Context {
	if !Valid(string(initial)) {
		initial = EN
	}
	return &Context{
		lang: initial,
		subs: make(map[int]func(Lang)),
	}
}

func (c *Context) Lang() Lang {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// Set changes the current language. Subscribers are called only when the
// value actually changes, outside the lock, in subscription order.
func (c *Context) Set(lang Lang) {
	if !Valid(string(lang)) {
		lang = EN
	}

	c.mu.Lock()
	if c.lang == lang {
		c.mu.Unlock()
		return
	}
	c.lang = lang
	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	fns := make([]func(Lang), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, c.subs[id])
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(lang)
	}
}

// Subscribe registers fn and returns a function that removes it.
func (c *Context) Subscribe(fn func(Lang)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}
