package services

import (
	"testing"

	"sports_equipment_lending/models"
	"sports_equipment_lending/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServices(t *testing.T) (*store.Repo, *BorrowService, *AdminService) {
	t.Helper()
	repo := store.NewRepo()
	log := zap.NewNop()
	return repo, NewBorrowService(repo, log), NewAdminService(repo, log)
}

func TestBorrowDepositTotals(t *testing.T) {
	_, borrow, admin := newTestServices(t)

	racket, err := admin.AddItem("admin", "Racket", "Badminton racket", 10)
	require.NoError(t, err)
	ball, err := admin.AddItem("admin", "Ball", "Football", 10)
	require.NoError(t, err)

	out, err := borrow.Borrow("S1", racket.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 200, out.DepositTotal)

	out, err = borrow.Borrow("S1", ball.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 150, out.DepositTotal)
	assert.Contains(t, out.Message, "deposit 150")
}

func TestBorrowFailures(t *testing.T) {
	_, borrow, admin := newTestServices(t)
	ball, err := admin.AddItem("admin", "Ball", "Football", 2)
	require.NoError(t, err)

	_, err = borrow.Borrow("S1", 9999, 1)
	assert.Equal(t, models.KindNotFound, models.KindOf(err))

	_, err = borrow.Borrow("S1", ball.ID, 4)
	assert.Equal(t, models.KindNotAllowed, models.KindOf(err))

	_, err = borrow.Borrow("S1", ball.ID, 3) // only 2 available
	assert.Equal(t, models.KindNotAllowed, models.KindOf(err))

	// nothing moved, nothing audited beyond the create
	got, err := borrow.Borrow("S1", ball.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 100, got.DepositTotal)
}

func TestGiveBack(t *testing.T) {
	repo, borrow, admin := newTestServices(t)
	ball, err := admin.AddItem("admin", "Ball", "Football", 10)
	require.NoError(t, err)

	_, err = borrow.Borrow("S1", ball.ID, 3)
	require.NoError(t, err)

	out, err := borrow.GiveBack("S1", ball.ID, 3)
	require.NoError(t, err)
	assert.Contains(t, out.Message, "returned 3")

	e, err := repo.FindEquipment(ball.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, e.Available)

	_, err = borrow.GiveBack("S1", ball.ID, 1)
	assert.Equal(t, models.KindConflict, models.KindOf(err))
	_, err = borrow.GiveBack("S1", 9999, 1)
	assert.Equal(t, models.KindNotFound, models.KindOf(err))
}

func TestFindItemName(t *testing.T) {
	_, borrow, admin := newTestServices(t)
	ball, err := admin.AddItem("admin", "Ball", "Football", 10)
	require.NoError(t, err)

	name, ok := borrow.FindItemName(ball.ID)
	assert.True(t, ok)
	assert.Equal(t, "Football", name)

	_, ok = borrow.FindItemName(9999)
	assert.False(t, ok)
}
