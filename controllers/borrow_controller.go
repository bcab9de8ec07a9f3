// controllers/borrow_controller.go
package controllers

import (
	"net/http"

	"sports_equipment_lending/app"

	"github.com/gin-gonic/gin"
)

type BorrowController struct{ *Srv }

func NewBorrowController(s *Srv) *BorrowController { return &BorrowController{Srv: s} }

type borrowReq struct {
	Actor string `json:"actor" binding:"required"`
	Qty   int    `json:"qty" binding:"required"`
}

// Borrow lends qty of an item to the actor. On success the handler also
// opens the matching ledger loan with the resolved item name; the stock
// move and the ledger entry are two separate steps sequenced here.
func (bc *BorrowController) Borrow(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var in borrowReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	out, err := bc.Srv.Borrow.Borrow(in.Actor, id, in.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	if name, found := bc.Srv.Borrow.FindItemName(id); found {
		_, _ = bc.Repo.OpenLoan(in.Actor, name, in.Qty, app.Now())
	}
	c.JSON(http.StatusOK, out)
}

// Return takes qty of an item back and then settles the ledger against the
// actor's open loans, newest first.
func (bc *BorrowController) Return(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var in borrowReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	out, err := bc.Srv.Borrow.GiveBack(in.Actor, id, in.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	settled := 0
	if name, found := bc.Srv.Borrow.FindItemName(id); found {
		settled = bc.Repo.SettleReturn(in.Actor, name, in.Qty, app.Now())
	}
	c.JSON(http.StatusOK, app.H{"message": out.Message, "settled": settled})
}
