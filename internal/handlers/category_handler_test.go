package handlers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	svc := services.NewCatalogService(db)
	app.Post("/api/categories", NewCategoryHandler(svc).Handle)
	app.Post("/api/buffet-items", NewBuffetHandler(svc).Handle)
	return app
}

func TestCategoriesMissingAction(t *testing.T) {
	app := newCatalogApp(nil)

	status, body := postJSON(t, app, "/api/categories", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingAction, body["return_code"])
}

func TestCategoriesInvalidAction(t *testing.T) {
	app := newCatalogApp(nil)

	status, body := postJSON(t, app, "/api/categories", fiber.Map{
		"action": "delete_all",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeInvalidAction, body["return_code"])
}

func TestCategoriesGetByIDMissingID(t *testing.T) {
	app := newCatalogApp(nil)

	status, body := postJSON(t, app, "/api/categories", fiber.Map{
		"action": "get_by_id",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingCategoryID, body["return_code"])
}

func TestCategoriesGetByIDInvalidID(t *testing.T) {
	app := newCatalogApp(nil)

	status, body := postJSON(t, app, "/api/categories", fiber.Map{
		"action":      "get_by_id",
		"category_id": -3,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeInvalidCategoryID, body["return_code"])
}

func TestCategoriesGetByTypeMissingType(t *testing.T) {
	app := newCatalogApp(nil)

	status, body := postJSON(t, app, "/api/categories", fiber.Map{
		"action": "get_by_type",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingCatType, body["return_code"])
}

func TestCategoriesGetAll(t *testing.T) {
	db, mock := newMockDB(t)
	app := newCatalogApp(db)

	mock.ExpectQuery(`SELECT \* FROM "product_categories"`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_type", "is_active", "minimum_quantity"}).
			AddRow(1, "Classic", "buffet", true, 5).
			AddRow(2, "Enhanced", "buffet", true, 5))

	status, body := postJSON(t, app, "/api/categories", fiber.Map{
		"action": "get_all",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, dto.CodeSuccess, body["return_code"])
	categories, ok := body["categories"].([]interface{})
	require.True(t, ok)
	assert.Len(t, categories, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoriesGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	app := newCatalogApp(db)

	mock.ExpectQuery(`SELECT \* FROM "product_categories"`).
		WithArgs(uint(99), true, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	status, body := postJSON(t, app, "/api/categories", fiber.Map{
		"action":      "get_by_id",
		"category_id": 99,
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, dto.CodeCategoryNotFound, body["return_code"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuffetItemsMissingType(t *testing.T) {
	app := newCatalogApp(nil)

	status, body := postJSON(t, app, "/api/buffet-items", fiber.Map{
		"action": "get_by_buffet_type",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingBuffetType, body["return_code"])
}

func TestBuffetItemsInvalidType(t *testing.T) {
	app := newCatalogApp(nil)

	status, body := postJSON(t, app, "/api/buffet-items", fiber.Map{
		"action":      "get_by_buffet_type",
		"buffet_type": "Premium",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeInvalidBuffetType, body["return_code"])
}

func TestBuffetItemsFallback(t *testing.T) {
	db, mock := newMockDB(t)
	app := newCatalogApp(db)

	// No seeded Deluxe category: the hardcoded fallback list serves the
	// full cumulative tier.
	mock.ExpectQuery(`SELECT \* FROM "product_categories"`).
		WithArgs("Deluxe", true, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	status, body := postJSON(t, app, "/api/buffet-items", fiber.Map{
		"action":      "get_by_buffet_type",
		"buffet_type": "Deluxe",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, dto.CodeSuccess, body["return_code"])
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 18)
	assert.NoError(t, mock.ExpectationsWereMet())
}
