package routes

import (
	"sports_equipment_lending/app"
	"sports_equipment_lending/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	equipCtl := controllers.NewEquipmentController(s)
	borrowCtl := controllers.NewBorrowController(s)
	auditCtl := controllers.NewAuditController(s)

	// ------------------------------
	// Catalog (browse + admin)
	// ------------------------------
	equip := r.Group("/api/equipment")
	{
		equip.GET("", equipCtl.ListEquipment) // ?q=
		equip.POST("", equipCtl.CreateItem)
		equip.DELETE("/:id", equipCtl.DeleteItem)
		equip.POST("/:id/stock/add", equipCtl.AddStock)
		equip.POST("/:id/stock/remove", equipCtl.RemoveStock)

		// Borrow / return
		equip.POST("/:id/borrow", borrowCtl.Borrow)
		equip.POST("/:id/return", borrowCtl.Return)
	}

	// ------------------------------
	// Records
	// ------------------------------
	r.GET("/api/logs", auditCtl.ListLogs)
	r.GET("/api/loans", auditCtl.ListLoans) // ?actor=
}
