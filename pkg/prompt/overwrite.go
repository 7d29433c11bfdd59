package prompt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ConfirmOverwrite asks before an existing draft is replaced. A path with no
// file behind it needs no confirmation.
func ConfirmOverwrite(ctx context.Context, driver Driver, path string) (bool, error) {
	if driver == nil {
		return false, errors.New("prompt: driver is required")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("prompt: stat %s: %w", path, err)
	}

	ok, err := driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("%s already exists. Overwrite?", path),
	})
	if err != nil {
		return false, fmt.Errorf("prompt: confirm overwrite: %w", err)
	}
	return ok, nil
}
