// models/audit_log.go
package models

import "time"

// LogType tags one mutating action in the audit trail.
type LogType string

const (
	LogBorrow       LogType = "BORROW"
	LogReturn       LogType = "RETURN"
	LogAdjustAdd    LogType = "ADJUST_ADD"
	LogAdjustRemove LogType = "ADJUST_REMOVE"
	LogCreateItem   LogType = "CREATE_ITEM"
	LogDeleteItem   LogType = "DELETE_ITEM"
)

// LogEntry is one immutable line of the append-only audit trail.
type LogEntry struct {
	ID          string    `json:"id"`
	At          time.Time `json:"at"`
	Actor       string    `json:"actor"`
	Type        LogType   `json:"type"`
	EquipmentID int       `json:"equipmentId"`
	Qty         int       `json:"qty"`
	Note        string    `json:"note,omitempty"`
}
