package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuffetItemsRejectsUnknownType(t *testing.T) {
	svc := NewCatalogService(nil)

	_, err := svc.GetBuffetItems("Premium")
	assert.ErrorIs(t, err, ErrInvalidBuffetType)

	_, err = svc.GetBuffetItems("classic")
	assert.ErrorIs(t, err, ErrInvalidBuffetType)
}

func TestGetBuffetItemsFallbackWhenCategoryMissing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCatalogService(db)

	mock.ExpectQuery(`SELECT \* FROM "product_categories"`).
		WithArgs("Classic", true, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	items, err := svc.GetBuffetItems("Classic")
	require.NoError(t, err)
	assert.Len(t, items, 8)
	assert.Equal(t, "Sandwiches", items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFallbackTiersAreCumulative(t *testing.T) {
	classic := fallbackBuffetItems("Classic")
	enhanced := fallbackBuffetItems("Enhanced")
	deluxe := fallbackBuffetItems("Deluxe")

	assert.Len(t, classic, 8)
	assert.Len(t, enhanced, 13)
	assert.Len(t, deluxe, 18)

	// Each tier is a superset of the one below it.
	inEnhanced := make(map[string]bool, len(enhanced))
	for _, item := range enhanced {
		inEnhanced[item.Name] = true
	}
	for _, item := range classic {
		assert.True(t, inEnhanced[item.Name], "Enhanced missing %q", item.Name)
	}

	inDeluxe := make(map[string]bool, len(deluxe))
	for _, item := range deluxe {
		inDeluxe[item.Name] = true
	}
	for _, item := range enhanced {
		assert.True(t, inDeluxe[item.Name], "Deluxe missing %q", item.Name)
	}

	// Every fallback item is flagged as default-included.
	for _, item := range deluxe {
		assert.True(t, item.IsDefault, "%q should be default", item.Name)
	}
}
