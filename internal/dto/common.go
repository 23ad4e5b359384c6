package dto

// Return codes shared across the API. Every JSON response carries one in
// its envelope alongside a human-readable message.
const (
	CodeSuccess           = "SUCCESS"
	CodeServerError       = "SERVER_ERROR"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeMissingAction     = "MISSING_ACTION"
	CodeInvalidAction     = "INVALID_ACTION"
	CodeUserExists        = "USER_EXISTS"
	CodeInvalidCreds      = "INVALID_CREDENTIALS"
	CodeEmailNotVerified  = "EMAIL_NOT_VERIFIED"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeNoToken           = "NO_TOKEN"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeMissingUserSess   = "MISSING_USER_SESSION"
	CodeMissingFields     = "MISSING_REQUIRED_FIELDS"
	CodeCategoryNotFound  = "CATEGORY_NOT_FOUND"
	CodeMissingCategoryID = "MISSING_CATEGORY_ID"
	CodeInvalidCategoryID = "INVALID_CATEGORY_ID"
	CodeMissingCatType    = "MISSING_CATEGORY_TYPE"
	CodeMissingBuffetType = "MISSING_BUFFET_TYPE"
	CodeInvalidBuffetType = "INVALID_BUFFET_TYPE"
	CodeCartEmpty         = "CART_EMPTY"
	CodeItemNotFound      = "ITEM_NOT_FOUND"
	CodeOrderNotFound     = "ORDER_NOT_FOUND"
	CodeInfoNotFound      = "INFO_NOT_FOUND"
	CodeMissingAppVersion = "MISSING_APP_VERSION"
	CodeAppUpdateRequired = "APP_UPDATE_REQUIRED"
)

// Envelope is the uniform response shell. Handlers extend it with
// payload fields via fiber.Map; typed responses embed it.
type Envelope struct {
	ReturnCode string `json:"return_code"`
	Message    string `json:"message"`
}
