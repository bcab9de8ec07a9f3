// models/loan.go
package models

import "time"

// Loan is one borrow transaction in the ledger. A loan with ReturnedAt nil
// is still open. Partial returns split a loan into an open remainder and a
// closed fragment whose quantities sum to the original.
type Loan struct {
	ID         string     `json:"id"`
	Actor      string     `json:"actor"`
	ItemName   string     `json:"itemName"`
	Qty        int        `json:"qty"`
	BorrowedAt time.Time  `json:"borrowedAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
}

func (l *Loan) Open() bool { return l.ReturnedAt == nil }
