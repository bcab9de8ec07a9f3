// store/repo_loan.go
package store

import (
	"strings"
	"time"

	"sports_equipment_lending/models"

	"github.com/google/uuid"
)

// Loan ledger. Loans are matched by the (actor, itemName) pair, not by
// equipment id; two items sharing a display name, or a rename between
// borrow and return, are indistinguishable here.

// OpenLoan appends a new open loan at the end of the ledger.
func (r *Repo) OpenLoan(actor, itemName string, qty int, at time.Time) (models.Loan, error) {
	if qty <= 0 {
		return models.Loan{}, models.Validationf("qty must be > 0")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	l := &models.Loan{
		ID:         uuid.NewString(),
		Actor:      actor,
		ItemName:   itemName,
		Qty:        qty,
		BorrowedAt: at,
	}
	r.loans = append(r.loans, l)
	return *l, nil
}

// SettleReturn matches a return of qty units against open loans of the same
// actor and item, newest first. A loan fully covered is closed in place; a
// loan only partly covered is split into an open remainder followed by a
// closed fragment, keeping its position in the ledger. Whatever cannot be
// matched is dropped; the returned count is the quantity actually settled.
func (r *Repo) SettleReturn(actor, itemName string, qty int, at time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	settled := 0
	for i := len(r.loans) - 1; i >= 0 && qty > 0; i-- {
		l := r.loans[i]
		if l.Actor != actor || l.ItemName != itemName || !l.Open() {
			continue
		}
		canClose := min(qty, l.Qty)
		when := at
		if canClose == l.Qty {
			l.ReturnedAt = &when
		} else {
			remainder := &models.Loan{
				ID:         l.ID,
				Actor:      l.Actor,
				ItemName:   l.ItemName,
				Qty:        l.Qty - canClose,
				BorrowedAt: l.BorrowedAt,
			}
			closed := &models.Loan{
				ID:         uuid.NewString(),
				Actor:      l.Actor,
				ItemName:   l.ItemName,
				Qty:        canClose,
				BorrowedAt: l.BorrowedAt,
				ReturnedAt: &when,
			}
			r.loans = append(r.loans[:i], append([]*models.Loan{remainder, closed}, r.loans[i+1:]...)...)
		}
		qty -= canClose
		settled += canClose
	}
	return settled
}

// ListLoans returns ledger snapshots in insertion order. A non-blank filter
// keeps only loans whose actor contains it, case-insensitively.
func (r *Repo) ListLoans(actorFilter string) []models.Loan {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kw := strings.ToLower(strings.TrimSpace(actorFilter))
	out := make([]models.Loan, 0, len(r.loans))
	for _, l := range r.loans {
		if kw == "" || strings.Contains(strings.ToLower(l.Actor), kw) {
			out = append(out, *l)
		}
	}
	return out
}
