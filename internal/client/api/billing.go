package api

import (
	"context"
	"net/url"

	"github.com/avolkov/recondesk/internal/client/models"
)

// PaidStatus reports whether the user holds a paid subscription.
func (c *HTTPClient) PaidStatus(ctx context.Context, token, username string) (bool, error) {
	q := url.Values{"jwt_token": {token}}
	var paid bool
	if err := c.get(ctx, "/users/get-paid-status/"+username, q, token, &paid); err != nil {
		return false, err
	}
	return paid, nil
}

// BillAmount returns the user's current bill.
func (c *HTTPClient) BillAmount(ctx context.Context, token, username string) (float64, error) {
	q := url.Values{"jwt_token": {token}}
	var amount float64
	if err := c.get(ctx, "/users/get-bill-amount/"+username, q, token, &amount); err != nil {
		return 0, err
	}
	return amount, nil
}

type paymentRequest struct {
	Username string  `json:"username"`
	JWTToken string  `json:"jwt_token"`
	Amount   float64 `json:"amount"`
}

// MakePayment settles a payment and upgrades the user to the paid tier.
// Settlement itself happens on the billing side; the client only submits.
func (c *HTTPClient) MakePayment(ctx context.Context, token, username string, amount float64) error {
	return c.post(ctx, "/users/make-payment", nil, token,
		paymentRequest{Username: username, JWTToken: token, Amount: amount}, nil)
}

// AllUsers lists every registered user. Admin only.
func (c *HTTPClient) AllUsers(ctx context.Context, adminSecret string) ([]models.Principal, error) {
	q := url.Values{"admin_secret_key": {adminSecret}}
	var users []models.Principal
	if err := c.get(ctx, "/users/fetch-all-users", q, "", &users); err != nil {
		return nil, err
	}
	return users, nil
}
