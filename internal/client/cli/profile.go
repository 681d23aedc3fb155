package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Profile shows the account details together with live billing state.
func (a *App) Profile(ctx context.Context) error {
	if !a.guard(ctx, "/profile") {
		return nil
	}
	p := a.sessions.Principal()

	printlnFn("Username: " + p.Username)
	printlnFn("Name:     " + p.FullName())
	printlnFn("Email:    " + p.Email)
	printlnFn("Mobile:   " + p.MobileNo)
	printlnFn("Role:     " + string(p.EffectiveRole()))

	paid, err := a.api.PaidStatus(ctx, a.sessions.Token(), p.Username)
	if err != nil {
		return err
	}
	if paid {
		printlnFn("Tier:     paid (all tools, unlimited scans)")
		amount, err := a.api.BillAmount(ctx, a.sessions.Token(), p.Username)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Bill:     %.2f", amount))
	} else {
		printlnFn("Tier:     free (dig, nmap, whatweb; 15 scans per key)")
		printlnFn("Upgrade with: pay <amount>")
	}
	return nil
}

// Pay submits a payment to upgrade to the paid tier, then refreshes the
// cached profile so the new tier takes effect immediately.
func (a *App) Pay(ctx context.Context, amountArg string) error {
	if !a.guard(ctx, "/profile") {
		return nil
	}
	p := a.sessions.Principal()

	amount, err := strconv.ParseFloat(amountArg, 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid amount %q", amountArg)
	}

	if err := a.api.MakePayment(ctx, a.sessions.Token(), p.Username, amount); err != nil {
		return err
	}

	refreshed, err := a.sessions.RefreshProfile(ctx)
	if err != nil {
		printlnFn("Payment accepted, but the profile refresh failed; re-login to pick up the new tier.")
		return err
	}
	if refreshed != nil && refreshed.IsPaid {
		printlnFn("Payment accepted. You are now on the paid tier.")
	} else {
		printlnFn("Payment accepted.")
	}
	return nil
}
