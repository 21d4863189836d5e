package usecase

import (
	"context"
	"sync"
)

type recordingNotifier struct {
	mu  sync.Mutex
	got []Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recordingNotifier) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.got...)
}

func (r *recordingNotifier) last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.got) == 0 {
		return Notification{}
	}
	return r.got[len(r.got)-1]
}

type fakePersister struct {
	mu      sync.Mutex
	saves   int
	clears  int
	saveErr error
}

func (p *fakePersister) Save(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves++
	return p.saveErr
}

func (p *fakePersister) Clear(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clears++
	return nil
}

func strPtr(v string) *string { return &v }
