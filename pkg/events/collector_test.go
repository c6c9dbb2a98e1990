package events

import (
	"errors"
	"sync"
	"testing"
)

func TestCollectorForwards(t *testing.T) {
	var forwarded []Event
	c := NewCollector(HandlerFunc(func(ev Event) {
		forwarded = append(forwarded, ev)
	}))

	c.Handle(Created("serverless.yml"))
	c.Handle(Skipped("Dockerfile", "docker disabled"))
	c.Handle(Warning("README.md", "overwrote existing file", nil))

	if len(forwarded) != 3 {
		t.Fatalf("forwarded %d events, want 3", len(forwarded))
	}
	if got := c.Events(); len(got) != 3 {
		t.Fatalf("collected %d events, want 3", len(got))
	}
	if got := c.Events()[0]; got.Path != "serverless.yml" || got.Message != "created" {
		t.Errorf("first event = %+v", got)
	}
}

func TestCollectorNilHandler(t *testing.T) {
	c := NewCollector(nil)
	c.Handle(Created("a"))

	if len(c.Events()) != 1 {
		t.Fatal("event not recorded")
	}
}

func TestCollectorAtLevelAndSummary(t *testing.T) {
	c := NewCollector(nil)
	c.Handle(Created("a"))
	c.Handle(Created("b"))
	c.Handle(Warning("c", "exists", errors.New("boom")))

	if got := c.AtLevel(Warn); len(got) != 1 || got[0].Path != "c" {
		t.Errorf("AtLevel(Warn) = %+v", got)
	}
	if !c.HasLevel(Warn) {
		t.Error("HasLevel(Warn) = false")
	}
	if c.HasLevel(Error) {
		t.Error("HasLevel(Error) = true")
	}

	s := c.Summary()
	if s.Infos != 2 || s.Warnings != 1 || s.Errors != 0 {
		t.Errorf("summary = %+v", s)
	}
	if s.String() != "2 created/skipped, 1 warnings, 0 errors" {
		t.Errorf("summary string = %q", s.String())
	}
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector(Noop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Handle(Created("x"))
			}
		}()
	}
	wg.Wait()

	if got := len(c.Events()); got != 1600 {
		t.Fatalf("collected %d events, want 1600", got)
	}
}
