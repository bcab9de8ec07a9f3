// controllers/srv.go
package controllers

import (
	"net/http"

	"sports_equipment_lending/app"
	"sports_equipment_lending/models"
	"sports_equipment_lending/services"
	"sports_equipment_lending/store"
)

// Srv bundles the coordinators the controllers dispatch to.
type Srv struct {
	Repo   *store.Repo
	Borrow *services.BorrowService
	Admin  *services.AdminService
	Cfg    app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:   a.Repo,
		Borrow: services.NewBorrowService(a.Repo, a.Log),
		Admin:  services.NewAdminService(a.Repo, a.Log),
		Cfg:    a.Config,
	}
}

// --- helpers ---

// statusFor maps an error kind onto the HTTP status of the failure reply.
func statusFor(err error) int {
	switch models.KindOf(err) {
	case models.KindValidation:
		return http.StatusBadRequest
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindNotAllowed, models.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *app.Ctx, err error) {
	c.JSON(statusFor(err), app.H{"error": err.Error(), "kind": string(models.KindOf(err))})
}
