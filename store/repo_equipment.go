// store/repo_equipment.go
package store

import (
	"fmt"
	"strings"

	"sports_equipment_lending/models"
)

// Catalog operations. Each method is atomic: lookup, invariant check,
// mutation and audit append happen under one lock, mirroring a DB
// transaction around check-then-update.

func (r *Repo) CreateEquipment(actor string, category models.Category, name string, stock int) (models.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := models.NewEquipment(r.nextID, category, name, stock)
	if err != nil {
		return models.Equipment{}, err
	}
	r.nextIDLocked() // consume the id now that validation passed
	r.items[e.ID] = e
	r.order = append(r.order, e.ID)
	r.appendLogLocked(actor, models.LogCreateItem, e.ID, stock, fmt.Sprintf("create '%s'", name))
	return *e, nil
}

func (r *Repo) DeleteEquipment(actor string, id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.appendLogLocked(actor, models.LogDeleteItem, id, 0, "delete")
	return true
}

func (r *Repo) FindEquipment(id int) (models.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return models.Equipment{}, models.NotFoundf("equipment %d not found", id)
	}
	return *e, nil
}

// ListEquipment returns catalog snapshots in insertion order. A blank
// keyword returns everything, otherwise names are matched by
// case-insensitive substring.
func (r *Repo) ListEquipment(keyword string) []models.Equipment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kw := strings.ToLower(strings.TrimSpace(keyword))
	out := make([]models.Equipment, 0, len(r.order))
	for _, id := range r.order {
		e := r.items[id]
		if kw == "" || strings.Contains(strings.ToLower(e.Name), kw) {
			out = append(out, *e)
		}
	}
	return out
}

// Borrow takes qty of item id out of stock for actor and records the audit
// entry. Returns the post-borrow snapshot.
func (r *Repo) Borrow(actor string, id, qty int) (models.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return models.Equipment{}, models.NotFoundf("equipment %d not found", id)
	}
	if err := e.Borrow(qty); err != nil {
		return models.Equipment{}, err
	}
	r.appendLogLocked(actor, models.LogBorrow, id, qty, fmt.Sprintf("borrow '%s'", e))
	return *e, nil
}

// GiveBack puts qty of item id back into stock for actor.
func (r *Repo) GiveBack(actor string, id, qty int) (models.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return models.Equipment{}, models.NotFoundf("equipment %d not found", id)
	}
	if err := e.GiveBack(qty); err != nil {
		return models.Equipment{}, err
	}
	r.appendLogLocked(actor, models.LogReturn, id, qty, fmt.Sprintf("return '%s'", e))
	return *e, nil
}

func (r *Repo) AddStock(actor string, id, qty int) (models.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return models.Equipment{}, models.NotFoundf("equipment %d not found", id)
	}
	if err := e.AddStock(qty); err != nil {
		return models.Equipment{}, err
	}
	r.appendLogLocked(actor, models.LogAdjustAdd, id, qty, "add stock")
	return *e, nil
}

func (r *Repo) RemoveStock(actor string, id, qty int) (models.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return models.Equipment{}, models.NotFoundf("equipment %d not found", id)
	}
	if err := e.RemoveStock(qty); err != nil {
		return models.Equipment{}, err
	}
	r.appendLogLocked(actor, models.LogAdjustRemove, id, qty, "remove stock")
	return *e, nil
}
