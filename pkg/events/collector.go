package events

import (
	"fmt"
	"sync"
)

// Collector records every event it handles before forwarding it. Safe for
// concurrent use; the scaffolder emits from multiple goroutines.
type Collector struct {
	mu      sync.Mutex
	events  []Event
	handler Handler
}

func NewCollector(handler Handler) *Collector {
	if handler == nil {
		handler = Noop()
	}
	return &Collector{handler: handler}
}

func (c *Collector) Handle(event Event) {
	c.mu.Lock()
	c.events = append(c.events, event)
	c.mu.Unlock()

	c.handler.Handle(event)
}

// Events returns a snapshot of everything collected so far.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *Collector) AtLevel(level Level) []Event {
	out := make([]Event, 0)
	for _, event := range c.Events() {
		if event.Level >= level {
			out = append(out, event)
		}
	}
	return out
}

func (c *Collector) HasLevel(level Level) bool {
	for _, event := range c.Events() {
		if event.Level == level {
			return true
		}
	}
	return false
}

// Summary counts collected events by level.
type Summary struct {
	Infos    int
	Warnings int
	Errors   int
}

func (c *Collector) Summary() Summary {
	var s Summary
	for _, event := range c.Events() {
		switch event.Level {
		case Info:
			s.Infos++
		case Warn:
			s.Warnings++
		case Error:
			s.Errors++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d created/skipped, %d warnings, %d errors", s.Infos, s.Warnings, s.Errors)
}
