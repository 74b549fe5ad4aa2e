package events

import (
	"context"
	"sync"
)

// MemoryNotifier keeps notifications in process. It is used when no Redis
// address is configured.
type MemoryNotifier struct {
	mu     sync.Mutex
	recent map[int][]Notification
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{recent: make(map[int][]Notification)}
}

func (n *MemoryNotifier) Notify(_ context.Context, msg Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	list := append([]Notification{msg}, n.recent[msg.CompanyID]...)
	if len(list) > RecentLimit {
		list = list[:RecentLimit]
	}
	n.recent[msg.CompanyID] = list
	return nil
}

func (n *MemoryNotifier) Recent(_ context.Context, companyID int) ([]Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]Notification{}, n.recent[companyID]...), nil
}
