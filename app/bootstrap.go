// app/bootstrap.go
package app

import "go.uber.org/zap"

// SeedDemo pre-populates the catalog with the fixed demo set: five ball
// items with ten units each. Ids start at 1001.
func (a *App) SeedDemo() {
	seed := []string{"Football", "Basketball", "Shuttlecock", "Volleyball", "Sepak takraw"}
	for _, name := range seed {
		if _, err := a.Repo.CreateEquipment("seed", "Ball", name, 10); err != nil {
			a.Log.Warn("seed failed", zap.String("name", name), zap.Error(err))
		}
	}
	a.Log.Info("seeded demo catalog", zap.Int("items", len(seed)))
}
