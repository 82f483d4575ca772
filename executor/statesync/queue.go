package statesync

import (
	"sync"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
)

// Queue buffers desired state snapshots between the stream and the reconciler.
// Each snapshot is a full state, so when the queue is full the snapshot with
// the lowest clock is discarded rather than blocking the stream. Snapshots
// without a clock rank below any clocked one.
type Queue struct {
	lock    sync.Mutex
	items   []*executorapi.DesiredExecutorState
	size    int
	dropped int
	ready   chan struct{}
}

func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{
		size:  size,
		ready: make(chan struct{}, 1),
	}
}

// Push never blocks. It returns true if a snapshot was discarded to make room,
// which may be desired itself when it is older than everything queued.
func (q *Queue) Push(desired *executorapi.DesiredExecutorState) bool {
	q.lock.Lock()
	dropped := false
	if len(q.items) >= q.size {
		q.dropped++
		dropped = true
		lowest := 0
		for i, item := range q.items {
			if olderThan(item, q.items[lowest]) {
				lowest = i
			}
		}
		if !olderThan(q.items[lowest], desired) && !bothClockless(q.items[lowest], desired) {
			q.lock.Unlock()
			return dropped
		}
		copy(q.items[lowest:], q.items[lowest+1:])
		q.items[len(q.items)-1] = nil
		q.items = q.items[:len(q.items)-1]
	}
	q.items = append(q.items, desired)
	q.lock.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
	return dropped
}

// olderThan orders snapshots by clock, with clockless ones first.
func olderThan(a, b *executorapi.DesiredExecutorState) bool {
	if a.Clock == nil {
		return b.Clock != nil
	}
	return b.Clock != nil && a.GetClock() < b.GetClock()
}

func bothClockless(a, b *executorapi.DesiredExecutorState) bool {
	return a.Clock == nil && b.Clock == nil
}

// Ready is signalled after a push. Consumers drain with TryPop when it fires.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

func (q *Queue) TryPop() (*executorapi.DesiredExecutorState, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	desired := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return desired, true
}

func (q *Queue) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.items)
}

// Dropped is the number of snapshots discarded because the queue was full.
func (q *Queue) Dropped() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.dropped
}
