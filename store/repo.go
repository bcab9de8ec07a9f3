// store/repo.go
package store

import (
	"sync"
	"time"

	"sports_equipment_lending/models"

	"github.com/google/uuid"
)

// Repo owns the whole in-memory state: the equipment catalog, the audit
// trail and the loan ledger. One RWMutex guards all three so every
// operation runs as a single critical section; a borrow can never
// interleave with a stock adjustment on the same item.
type Repo struct {
	mu sync.RWMutex

	items  map[int]*models.Equipment
	order  []int // catalog ids in insertion order
	nextID int

	logs  []models.LogEntry
	loans []*models.Loan
}

func NewRepo() *Repo {
	return &Repo{
		items:  make(map[int]*models.Equipment),
		nextID: 1001,
	}
}

// nextIDLocked hands out catalog ids starting at 1001; ids are never reused,
// deleting an item leaves a hole.
func (r *Repo) nextIDLocked() int {
	id := r.nextID
	r.nextID++
	return id
}

func (r *Repo) appendLogLocked(actor string, t models.LogType, equipmentID, qty int, note string) {
	r.logs = append(r.logs, models.LogEntry{
		ID:          uuid.NewString(),
		At:          time.Now().UTC(),
		Actor:       actor,
		Type:        t,
		EquipmentID: equipmentID,
		Qty:         qty,
		Note:        note,
	})
}

// Logs returns a copy of the audit trail in insertion order.
func (r *Repo) Logs() []models.LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.LogEntry, len(r.logs))
	copy(out, r.logs)
	return out
}
