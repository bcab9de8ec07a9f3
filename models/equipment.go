// models/equipment.go
package models

import "fmt"

// Category decides the borrowing rule and per-item deposit of an item.
type Category string

const (
	CategoryBall       Category = "Ball"
	CategoryRacket     Category = "Racket"
	CategoryProtective Category = "Protective"
)

type categoryRule struct {
	allowBorrow    func(qty int) bool
	depositPerItem int
}

var categoryRules = map[Category]categoryRule{
	CategoryBall:       {allowBorrow: func(qty int) bool { return qty <= 3 }, depositPerItem: 50},
	CategoryRacket:     {allowBorrow: func(qty int) bool { return qty <= 2 }, depositPerItem: 100},
	CategoryProtective: {allowBorrow: func(qty int) bool { return qty%2 == 0 }, depositPerItem: 30},
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryRules[c]; !ok {
		return "", Validationf("unknown category %q", s)
	}
	return c, nil
}

// Equipment is one stock-tracked catalog item.
// Invariant: 0 <= Available <= TotalStock, before and after every operation.
type Equipment struct {
	ID         int      `json:"id"`
	Category   Category `json:"category"`
	Name       string   `json:"name"`
	TotalStock int      `json:"totalStock"`
	Available  int      `json:"available"`
}

func NewEquipment(id int, category Category, name string, stock int) (*Equipment, error) {
	if name == "" {
		return nil, Validationf("name must not be empty")
	}
	if stock < 0 {
		return nil, Validationf("stock must be >= 0")
	}
	if _, ok := categoryRules[category]; !ok {
		return nil, Validationf("unknown category %q", string(category))
	}
	return &Equipment{ID: id, Category: category, Name: name, TotalStock: stock, Available: stock}, nil
}

func (e *Equipment) Borrowed() int { return e.TotalStock - e.Available }

func (e *Equipment) DepositPerItem() int { return categoryRules[e.Category].depositPerItem }

// Borrow takes qty units out of stock. It rejects non-positive quantities,
// quantities the category rule disallows, and quantities above Available.
func (e *Equipment) Borrow(qty int) error {
	if qty <= 0 {
		return Validationf("qty must be > 0")
	}
	if !categoryRules[e.Category].allowBorrow(qty) {
		return NotAllowedf("category %s does not allow borrowing %d at once", e.Category, qty)
	}
	if qty > e.Available {
		return NotAllowedf("only %d of %q available", e.Available, e.Name)
	}
	e.Available -= qty
	return nil
}

// GiveBack puts qty units back into stock. Returning more than is currently
// out on loan would break the stock invariant and is rejected.
func (e *Equipment) GiveBack(qty int) error {
	if qty <= 0 {
		return Validationf("qty must be > 0")
	}
	if e.Available+qty > e.TotalStock {
		return Conflictf("cannot return %d, only %d of %q is out on loan", qty, e.Borrowed(), e.Name)
	}
	e.Available += qty
	return nil
}

func (e *Equipment) AddStock(qty int) error {
	if qty <= 0 {
		return Validationf("qty must be > 0")
	}
	e.TotalStock += qty
	e.Available += qty
	return nil
}

// RemoveStock shrinks capacity. It never shrinks below what is already out
// on loan: Available is recomputed so Borrowed stays untouched.
func (e *Equipment) RemoveStock(qty int) error {
	if qty <= 0 {
		return Validationf("qty must be > 0")
	}
	if qty > e.TotalStock {
		return Validationf("cannot remove %d, total stock is %d", qty, e.TotalStock)
	}
	borrowed := e.Borrowed()
	if e.TotalStock-qty < borrowed {
		return Conflictf("cannot shrink stock below the %d currently borrowed", borrowed)
	}
	e.TotalStock -= qty
	e.Available = e.TotalStock - borrowed
	return nil
}

func (e *Equipment) String() string {
	return fmt.Sprintf("#%d [%s] %s | total=%d available=%d", e.ID, e.Category, e.Name, e.TotalStock, e.Available)
}
