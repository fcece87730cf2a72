package shared

import (
	"sync"

	"github.com/google/uuid"
)

// ChargerLocks serializes reservation admission per charger. The overlap
// check and the subsequent insert are not atomic on their own; holding the
// charger's lock across both closes the check-then-write race inside one
// process. The storage exclusion constraint covers concurrent processes.
//
// One mutex per charger is retained for the life of the process; the set of
// chargers is small and bounded, so entries are never evicted.
type ChargerLocks struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

func NewChargerLocks() *ChargerLocks {
	return &ChargerLocks{}
}

// Lock acquires the mutex for the given charger and returns its unlock
// function.
func (l *ChargerLocks) Lock(chargerID uuid.UUID) func() {
	v, _ := l.locks.LoadOrStore(chargerID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
