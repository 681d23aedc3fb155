package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avolkov/recondesk/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register collects a profile interactively and submits it to the auth
// service. The profile is pre-validated locally so obvious mistakes never
// leave the machine. Registration does not log the new user in.
func (a *App) Register(ctx context.Context) error {
	reg := api.Registration{}
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter username", &reg.Username},
		{"Enter first name", &reg.FirstName},
		{"Enter last name", &reg.LastName},
		{"Enter email", &reg.Email},
		{"Enter mobile number (10 digits)", &reg.MobileNo},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	reg.Password = password

	if errs := validateRegistration(reg); len(errs) > 0 {
		return errs
	}

	if _, err := a.sessions.Register(ctx, reg); err != nil {
		return err
	}

	printlnFn("Account created. You can login now.")
	return nil
}

// Login prompts for credentials and authenticates against the auth service.
// On success the session (token and profile) is persisted locally so the
// next start restores it without a login.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	principal, err := a.sessions.Login(ctx, username, password)
	if err != nil {
		return err
	}

	tier := "free"
	if principal.IsPaid {
		tier = "paid"
	}
	printlnFn(fmt.Sprintf("Welcome, %s! (%s tier)", principal.Username, tier))
	return nil
}

// Logout clears the persisted session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}
