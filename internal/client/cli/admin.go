package cli

import (
	"context"
	"errors"
	"fmt"
)

// Admin dispatches the admin sub-commands. The admin page is behind the
// route gate (role check) and additionally needs the admin secret, which is
// only ever supplied via configuration, never embedded in the client.
func (a *App) Admin(ctx context.Context, args []string) error {
	if !a.guard(ctx, "/admin") {
		return nil
	}
	if a.config.AdminSecret == "" {
		printlnFn("Admin secret is not configured; set RECONDESK_ADMIN_SECRET.")
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: admin <users|keys|bump <key>>")
		return nil
	}

	switch args[0] {
	case "users":
		return a.adminUsers(ctx)
	case "keys":
		return a.adminKeys(ctx)
	case "bump":
		if len(args) != 2 {
			printlnFn("Usage: admin bump <key>")
			return nil
		}
		return a.adminBump(ctx, args[1])
	default:
		printlnFn("Unknown admin command:", args[0])
		return nil
	}
}

func (a *App) adminUsers(ctx context.Context) error {
	users, err := a.api.AllUsers(ctx, a.config.AdminSecret)
	if err != nil {
		return err
	}
	for _, u := range users {
		tier := "free"
		if u.IsPaid {
			tier = "paid"
		}
		printlnFn(fmt.Sprintf("  %-20s %-30s %s", u.Username, u.Email, tier))
	}
	return nil
}

func (a *App) adminKeys(ctx context.Context) error {
	keys, err := a.api.AllKeys(ctx, a.config.AdminSecret)
	if err != nil {
		return err
	}
	for _, k := range keys {
		printlnFn(fmt.Sprintf("  %-20s %s", k.Username, describeKey(k)))
	}
	return nil
}

func (a *App) adminBump(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key is required")
	}
	if err := a.api.IncrementKeyCount(ctx, key, a.config.AdminSecret); err != nil {
		return err
	}
	printlnFn("Count incremented.")
	return nil
}
