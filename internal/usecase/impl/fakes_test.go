package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"storehub/internal/binding"
	"storehub/internal/domain/service"
)

// memChannel is an in-memory DocumentChannel delivering snapshots
// synchronously, so every write round-trips before the call returns.
type memChannel struct {
	mu     sync.Mutex
	docs   map[string]service.Document
	subs   map[string][]func(service.Document)
	writes []service.Document
}

func newMemChannel() *memChannel {
	return &memChannel{
		docs: make(map[string]service.Document),
		subs: make(map[string][]func(service.Document)),
	}
}

func (c *memChannel) seed(ownerID string, doc service.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[ownerID] = doc
}

func (c *memChannel) Subscribe(_ context.Context, ownerID string, onSnapshot func(service.Document), _ func(error)) (service.Unsubscribe, error) {
	c.mu.Lock()
	c.subs[ownerID] = append(c.subs[ownerID], onSnapshot)
	doc := c.docs[ownerID]
	c.mu.Unlock()

	onSnapshot(doc)

	return func() {}, nil
}

func (c *memChannel) MergeWrite(_ context.Context, ownerID string, fields map[string]any) error {
	c.mu.Lock()
	doc := c.docs[ownerID]
	if doc == nil {
		doc = make(service.Document)
		c.docs[ownerID] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	c.writes = append(c.writes, service.Document(fields))
	subs := make([]func(service.Document), len(c.subs[ownerID]))
	copy(subs, c.subs[ownerID])
	c.mu.Unlock()

	for _, fn := range subs {
		fn(doc)
	}

	return nil
}

func (c *memChannel) Create(_ context.Context, ownerID string, fields map[string]any) error {
	doc := service.Document(fields)
	c.mu.Lock()
	c.docs[ownerID] = doc
	subs := make([]func(service.Document), len(c.subs[ownerID]))
	copy(subs, c.subs[ownerID])
	c.mu.Unlock()

	for _, fn := range subs {
		fn(doc)
	}

	return nil
}

func (c *memChannel) Get(_ context.Context, ownerID string) (service.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[ownerID]
	if !ok {
		return nil, nil
	}

	return doc, nil
}

func (c *memChannel) writeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.writes)
}

func (c *memChannel) lastWrite() service.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.writes) == 0 {
		return nil
	}

	return c.writes[len(c.writes)-1]
}

// capturePublisher records every published event.
type capturePublisher struct {
	mu     sync.Mutex
	events []*service.StoreEvent
}

func (p *capturePublisher) PublishStoreEvent(_ context.Context, event *service.StoreEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Kind)
	}

	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testManager(t *testing.T, channel service.DocumentChannel) *binding.Manager {
	t.Helper()
	m := binding.NewManagerWithChannel(context.Background(), channel, slog.New(slog.DiscardHandler))
	t.Cleanup(m.Close)

	return m
}
