package clock

import "sync"

// employeeLocks serializes clock events per employee. The read-then-
// create sequence on today's record is racy under concurrent requests
// for the same employee, so each event holds that employee's lock for
// its full duration. Locks are never evicted; the map is bounded by the
// number of employees that clocked in since process start.
type employeeLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEmployeeLocks() *employeeLocks {
	return &employeeLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *employeeLocks) lock(employeeID string) func() {
	l.mu.Lock()
	m, ok := l.locks[employeeID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[employeeID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
