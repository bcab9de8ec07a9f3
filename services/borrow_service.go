// services/borrow_service.go
package services

import (
	"fmt"

	"sports_equipment_lending/store"

	"go.uber.org/zap"
)

// Outcome is the user-facing result of a borrow or return.
type Outcome struct {
	Message      string `json:"message"`
	DepositTotal int    `json:"depositTotal,omitempty"`
}

// BorrowService handles one borrow or return against a single catalog item.
// Closing the matching ledger loans is the caller's job (see controllers);
// this service only moves stock and writes the audit entry.
type BorrowService struct {
	repo *store.Repo
	log  *zap.Logger
}

func NewBorrowService(repo *store.Repo, log *zap.Logger) *BorrowService {
	return &BorrowService{repo: repo, log: log}
}

// Borrow lends qty of item id to actor. The success outcome carries the
// total deposit, depositPerItem × qty for the item's category.
func (s *BorrowService) Borrow(actor string, id, qty int) (Outcome, error) {
	e, err := s.repo.Borrow(actor, id, qty)
	if err != nil {
		return Outcome{}, err
	}
	deposit := e.DepositPerItem() * qty
	s.log.Info("borrow",
		zap.String("actor", actor),
		zap.Int("equipmentId", id),
		zap.Int("qty", qty),
		zap.Int("deposit", deposit))
	return Outcome{
		Message:      fmt.Sprintf("borrowed %d x %q, total deposit %d", qty, e.Name, deposit),
		DepositTotal: deposit,
	}, nil
}

// GiveBack takes qty of item id back from actor.
func (s *BorrowService) GiveBack(actor string, id, qty int) (Outcome, error) {
	e, err := s.repo.GiveBack(actor, id, qty)
	if err != nil {
		return Outcome{}, err
	}
	s.log.Info("return",
		zap.String("actor", actor),
		zap.Int("equipmentId", id),
		zap.Int("qty", qty))
	return Outcome{Message: fmt.Sprintf("returned %d x %q", qty, e.Name)}, nil
}

// FindItemName resolves the display name of item id, used by callers that
// need the name to drive the loan ledger.
func (s *BorrowService) FindItemName(id int) (string, bool) {
	e, err := s.repo.FindEquipment(id)
	if err != nil {
		return "", false
	}
	return e.Name, true
}
