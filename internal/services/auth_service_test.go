package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		BcryptCost: bcrypt.MinCost,
	}
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig(), mail.LogOnly{})

	mock.ExpectQuery(`SELECT \* FROM "app_users"`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.ForgotPassword("nobody@example.com")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPasswordAnonymousUserIsSilent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig(), mail.LogOnly{})

	mock.ExpectQuery(`SELECT \* FROM "app_users"`).
		WithArgs("guest@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_anonymous"}).
			AddRow(5, "guest@example.com", true))

	err := svc.ForgotPassword("guest@example.com")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResendVerificationVerifiedUserIsSilent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig(), mail.LogOnly{})

	mock.ExpectQuery(`SELECT \* FROM "app_users"`).
		WithArgs("done@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "email_verified"}).
			AddRow(5, "done@example.com", true))

	err := svc.ResendVerification("done@example.com")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig(), mail.LogOnly{})

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "app_users"`).
		WithArgs("user@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "email_verified"}).
			AddRow(5, "user@example.com", string(hash), true))

	_, _, err = svc.Login("user@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig(), mail.LogOnly{})

	mock.ExpectQuery(`SELECT \* FROM "app_users"`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnverifiedReturnsUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig(), mail.LogOnly{})

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "app_users"`).
		WithArgs("new@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "is_anonymous", "email_verified"}).
			AddRow(7, "new@example.com", string(hash), false, false))

	user, token, err := svc.Login("new@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
	assert.Empty(t, token)
	// The user comes back so the handler can include user_id and email
	// for the resend flow.
	require.NotNil(t, user)
	assert.Equal(t, uint(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
