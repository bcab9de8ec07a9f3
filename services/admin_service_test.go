package services

import (
	"testing"

	"sports_equipment_lending/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem(t *testing.T) {
	_, _, admin := newTestServices(t)

	e, err := admin.AddItem("admin", "Ball", "Football", 10)
	require.NoError(t, err)
	assert.Equal(t, 1001, e.ID)
	assert.Equal(t, models.CategoryBall, e.Category)
	assert.Equal(t, 10, e.Available)

	_, err = admin.AddItem("admin", "Shoes", "Sneaker", 3)
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	_, err = admin.AddItem("admin", "Ball", "Football", -1)
	assert.Equal(t, models.KindValidation, models.KindOf(err))
}

func TestDeleteItem(t *testing.T) {
	_, _, admin := newTestServices(t)
	e, err := admin.AddItem("admin", "Ball", "Football", 10)
	require.NoError(t, err)

	assert.True(t, admin.DeleteItem("admin", e.ID))
	assert.False(t, admin.DeleteItem("admin", e.ID))
	assert.Empty(t, admin.List(""))
}

func TestStockAdjustments(t *testing.T) {
	_, borrow, admin := newTestServices(t)
	e, err := admin.AddItem("admin", "Ball", "Football", 10)
	require.NoError(t, err)

	out, err := admin.AddStock("admin", e.ID, 5)
	require.NoError(t, err)
	assert.Contains(t, out.Message, "total now 15")

	_, err = borrow.Borrow("S1", e.ID, 3)
	require.NoError(t, err)

	// 3 out on loan; shrinking to below that must be refused
	_, err = admin.RemoveStock("admin", e.ID, 13)
	assert.Equal(t, models.KindConflict, models.KindOf(err))

	out, err = admin.RemoveStock("admin", e.ID, 12)
	require.NoError(t, err)
	assert.Contains(t, out.Message, "total now 3")

	_, err = admin.AddStock("admin", 9999, 1)
	assert.Equal(t, models.KindNotFound, models.KindOf(err))
}

func TestListAndLogs(t *testing.T) {
	_, borrow, admin := newTestServices(t)
	a, err := admin.AddItem("admin", "Ball", "Football", 10)
	require.NoError(t, err)
	_, err = admin.AddItem("admin", "Racket", "Tennis racket", 4)
	require.NoError(t, err)

	assert.Len(t, admin.List(""), 2)
	assert.Len(t, admin.List("racket"), 1)

	_, err = borrow.Borrow("S1", a.ID, 1)
	require.NoError(t, err)

	logs := admin.Logs()
	require.Len(t, logs, 3)
	assert.Equal(t, models.LogCreateItem, logs[0].Type)
	assert.Equal(t, models.LogCreateItem, logs[1].Type)
	assert.Equal(t, models.LogBorrow, logs[2].Type)
}
