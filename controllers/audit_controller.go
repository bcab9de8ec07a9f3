// controllers/audit_controller.go
package controllers

import (
	"net/http"

	"sports_equipment_lending/app"

	"github.com/gin-gonic/gin"
)

type AuditController struct{ *Srv }

func NewAuditController(s *Srv) *AuditController { return &AuditController{Srv: s} }

// Audit trail, insertion order.
func (ac *AuditController) ListLogs(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Admin.Logs()})
}

// Loan ledger; ?actor= keeps only loans whose actor contains the value.
func (ac *AuditController) ListLoans(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Repo.ListLoans(c.Query("actor"))})
}
