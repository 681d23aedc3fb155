package cli

import (
	"context"
	"fmt"

	"github.com/avolkov/recondesk/internal/common"
)

const defaultTheme = "light"

// Theme shows or sets the persisted UI theme. The preference lives under
// its own storage key and is untouched by login and logout.
func (a *App) Theme(ctx context.Context, value string) error {
	if value == "" {
		current, err := a.prefs.Get(ctx, common.StorageKeyTheme)
		if err != nil {
			return err
		}
		if len(current) == 0 {
			printlnFn("Theme:", defaultTheme)
		} else {
			printlnFn("Theme:", string(current))
		}
		return nil
	}

	if value != "light" && value != "dark" {
		return fmt.Errorf("unknown theme %q, use light or dark", value)
	}
	if err := a.prefs.Set(ctx, common.StorageKeyTheme, []byte(value)); err != nil {
		return err
	}
	printlnFn("Theme set to", value)
	return nil
}
