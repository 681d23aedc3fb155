// Package api contains the HTTP clients for the four external service
// contracts the dashboard consumes: authentication, key management, scan
// execution, and billing. Remote error payloads are normalized into a single
// Error value at this boundary; nothing downstream inspects raw responses.
package api

import (
	"context"

	"github.com/avolkov/recondesk/internal/client/models"
)

// Registration is the profile payload sent to the auth service when creating
// an account.
type Registration struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	MobileNo  string `json:"mobile_no"`
	Password  string `json:"password"`
}

// AuthClient is the auth service contract.
type AuthClient interface {
	Register(ctx context.Context, reg Registration) (*models.Principal, error)
	Login(ctx context.Context, username, password string) (token string, err error)
	CurrentUser(ctx context.Context, token string) (*models.Principal, error)
	ValidateToken(ctx context.Context, username, token string) error
}

// KeyClient is the key-management service contract. The admin operations
// require the out-of-band admin secret; it is never embedded in the client.
type KeyClient interface {
	GenerateKey(ctx context.Context, token, username string, keyType models.KeyType) (string, error)
	ListKeys(ctx context.Context, token, username string) ([]models.ApiKey, error)
	KeyCount(ctx context.Context, key string) (int, error)

	AllKeys(ctx context.Context, adminSecret string) ([]models.ApiKey, error)
	IncrementKeyCount(ctx context.Context, key, adminSecret string) error
}

// ScanClient is the scan-execution service contract.
type ScanClient interface {
	ExecuteScan(ctx context.Context, tool, domain, key string) (*models.ScanRecord, error)
	ScanHistory(ctx context.Context, key string, limit int) ([]models.ScanRecord, error)
	ScanResult(ctx context.Context, scanID int64, key string) (*models.ScanRecord, error)
}

// BillingClient is the billing service contract.
type BillingClient interface {
	PaidStatus(ctx context.Context, token, username string) (bool, error)
	BillAmount(ctx context.Context, token, username string) (float64, error)
	MakePayment(ctx context.Context, token, username string, amount float64) error

	AllUsers(ctx context.Context, adminSecret string) ([]models.Principal, error)
}
