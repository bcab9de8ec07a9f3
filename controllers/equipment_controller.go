// controllers/equipment_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"sports_equipment_lending/app"

	"github.com/gin-gonic/gin"
)

type EquipmentController struct{ *Srv }

func NewEquipmentController(s *Srv) *EquipmentController { return &EquipmentController{Srv: s} }

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid equipment id"})
		return 0, false
	}
	return id, true
}

func actorOr(in, def string) string {
	if in == "" {
		return def
	}
	return in
}

// List the catalog, optionally narrowed by ?q= (case-insensitive substring
// on equipment name).
func (ec *EquipmentController) ListEquipment(c *gin.Context) {
	items := ec.Admin.List(c.Query("q"))
	c.JSON(http.StatusOK, app.H{"items": items})
}

// Create a catalog item.
func (ec *EquipmentController) CreateItem(c *gin.Context) {
	var in struct {
		Actor    string `json:"actor"`
		Category string `json:"category" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Stock    int    `json:"stock"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	e, err := ec.Admin.AddItem(actorOr(in.Actor, "admin"), in.Category, in.Name, in.Stock)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (ec *EquipmentController) DeleteItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	actor := actorOr(c.Query("actor"), "admin")
	if !ec.Admin.DeleteItem(actor, id) {
		c.JSON(http.StatusNotFound, app.H{"error": "equipment not found"})
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

type stockReq struct {
	Actor string `json:"actor"`
	Qty   int    `json:"qty" binding:"required"`
}

func (ec *EquipmentController) AddStock(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var in stockReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	out, err := ec.Admin.AddStock(actorOr(in.Actor, "admin"), id, in.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ec *EquipmentController) RemoveStock(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var in stockReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	out, err := ec.Admin.RemoveStock(actorOr(in.Actor, "admin"), id, in.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
