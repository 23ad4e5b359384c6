package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInsertFailed = errors.New("insert failed")

func ptrUint(v uint) *uint { return &v }

func TestOwnerValid(t *testing.T) {
	assert.False(t, Owner{}.Valid())
	assert.True(t, Owner{UserID: ptrUint(7)}.Valid())
	assert.True(t, Owner{SessionID: "guest-abc"}.Valid())
}

func TestCartTotal(t *testing.T) {
	assert.Equal(t, 0.0, CartTotal(nil))
	assert.Equal(t, 0.0, CartTotal([]dto.CartItem{}))

	items := []dto.CartItem{
		{TotalPrice: 45.00},
		{TotalPrice: 27.50},
		{TotalPrice: 9.99},
	}
	assert.InDelta(t, 82.49, CartTotal(items), 0.001)
}

func TestContentsNoCart(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WithArgs("cart", "guest-session", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	items, total, err := svc.Contents(Owner{SessionID: "guest-session"})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentsUserCartScopedByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WithArgs("cart", uint(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_status"}).AddRow(9, "cart"))
	mock.ExpectQuery(`FROM "order_categories" JOIN product_categories`).
		WithArgs(uint(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"order_category_id", "category_id", "category_name",
			"quantity", "unit_price", "total_price",
			"notes", "department_label", "deluxe_format",
		}).AddRow(3, 1, "Classic", 10, 9.00, 90.00, nil, nil, nil))
	mock.ExpectQuery(`FROM "order_items" JOIN menu_items`).
		WithArgs(uint(9)).
		WillReturnRows(sqlmock.NewRows([]string{"order_category_id", "menu_item_id", "name"}).
			AddRow(3, 1, "Sandwiches").
			AddRow(3, 2, "Quiche"))

	items, total, err := svc.Contents(Owner{UserID: ptrUint(42)})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Classic", items[0].CategoryName)
	assert.Equal(t, 10, items[0].Quantity)
	assert.Len(t, items[0].IncludedItems, 2)
	assert.InDelta(t, 90.00, total, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteItemNoCart(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WithArgs("cart", "s1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, _, err := svc.DeleteItem(Owner{SessionID: "s1"}, 5)
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteItemForeignLine(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WithArgs("cart", "s1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_status"}).AddRow(9, "cart"))
	// Line 77 belongs to another order, so the scoped lookup finds nothing.
	mock.ExpectQuery(`SELECT \* FROM "order_categories"`).
		WithArgs(uint(77), uint(9), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, _, err := svc.DeleteItem(Owner{SessionID: "s1"}, 77)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItemRollsBackOnItemInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectQuery(`SELECT \* FROM "product_categories"`).
		WithArgs(uint(1), true, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).
			AddRow(1, "Classic", true))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WithArgs("cart", "s1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_status"}).AddRow(9, "cart"))
	mock.ExpectQuery(`INSERT INTO "order_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	// The line went in, then the first menu-item row fails. The whole
	// addition must unwind so no orphan line survives.
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnError(errInsertFailed)
	mock.ExpectRollback()

	_, _, err := svc.AddItem(Owner{SessionID: "s1"}, AddLineInput{
		CategoryID:    1,
		Quantity:      10,
		UnitPrice:     9.00,
		IncludedItems: []uint{1, 2},
	})
	assert.ErrorIs(t, err, errInsertFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearNoCartSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WithArgs("cart", "s1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	err := svc.Clear(Owner{SessionID: "s1"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
