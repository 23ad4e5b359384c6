package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/mail"
	"github.com/stretchr/testify/assert"
)

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "NK000123", OrderNumber(123))
	assert.Equal(t, "NK000001", OrderNumber(1))
	assert.Equal(t, "NK999999", OrderNumber(999999))
	// Past six digits the number simply grows.
	assert.Equal(t, "NK1000000", OrderNumber(1000000))
}

func TestEstimatedTime(t *testing.T) {
	assert.Equal(t, "30 minutes", EstimatedTime(0))
	assert.Equal(t, "35 minutes", EstimatedTime(1))
	assert.Equal(t, "80 minutes", EstimatedTime(10))
	assert.Equal(t, "90 minutes", EstimatedTime(12))
	// Capped regardless of order size.
	assert.Equal(t, "90 minutes", EstimatedTime(500))
}

func TestSubmitRejectsBadSchedule(t *testing.T) {
	svc := NewOrderService(nil, &config.Config{}, mail.LogOnly{}, nil)

	_, err := svc.Submit(Owner{SessionID: "s1"}, dto.SubmitOrderRequest{
		RequestedDate: "25-12-2026",
		RequestedTime: "18:00",
	})
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = svc.Submit(Owner{SessionID: "s1"}, dto.SubmitOrderRequest{
		RequestedDate: "2026-12-25",
		RequestedTime: "6pm",
	})
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestSubmitEmptyCartMutatesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	carts := NewCartService(db)
	svc := NewOrderService(db, &config.Config{}, mail.LogOnly{}, carts)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WithArgs("cart", "s1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.Submit(Owner{SessionID: "s1"}, dto.SubmitOrderRequest{
		SessionID:     "s1",
		DeliveryType:  "collection",
		PhoneNumber:   "01938 123456",
		Email:         "guest@example.com",
		RequestedDate: "2026-12-25",
		RequestedTime: "18:00",
	})
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitCartWithNoLinesMutatesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	carts := NewCartService(db)
	svc := NewOrderService(db, &config.Config{}, mail.LogOnly{}, carts)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WithArgs("cart", "s1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_status"}).AddRow(4, "cart"))
	mock.ExpectQuery(`FROM "order_categories" JOIN product_categories`).
		WithArgs(uint(4)).
		WillReturnRows(sqlmock.NewRows([]string{"order_category_id"}))
	mock.ExpectQuery(`FROM "order_items" JOIN menu_items`).
		WithArgs(uint(4)).
		WillReturnRows(sqlmock.NewRows([]string{"order_category_id"}))
	mock.ExpectRollback()

	_, err := svc.Submit(Owner{SessionID: "s1"}, dto.SubmitOrderRequest{
		SessionID:     "s1",
		DeliveryType:  "collection",
		PhoneNumber:   "01938 123456",
		Email:         "guest@example.com",
		RequestedDate: "2026-12-25",
		RequestedTime: "18:00",
	})
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.NoError(t, mock.ExpectationsWereMet())
}
