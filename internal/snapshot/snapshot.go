// Package snapshot persists a fetched catalog to disk so later runs can
// reconcile against it without hitting the storefront again.
package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sellerstack/crosslist/pkg/catalog"
	"github.com/sellerstack/crosslist/pkg/errors"
	"github.com/sellerstack/crosslist/pkg/logging"
)

// DefaultPath is where fetch writes when no path is configured.
const DefaultPath = "storefront-items.json"

// Save writes items as a JSON array, replacing any existing snapshot.
func Save(ctx context.Context, path string, items []catalog.Item) error {
	if path == "" {
		return errors.ErrInvalidInput
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.WrapIO("marshal snapshot", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapIO("create snapshot directory", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write snapshot", path, err)
	}

	logging.Ctx(ctx).Debug().
		Str("path", path).
		Int("items", len(items)).
		Msg("snapshot saved")
	return nil
}

// Load reads a snapshot back. A missing file is an empty catalog, not
// an error, so first runs work without setup.
func Load(ctx context.Context, path string) ([]catalog.Item, error) {
	if path == "" {
		return nil, errors.ErrInvalidInput
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Ctx(ctx).Debug().
				Str("path", path).
				Msg("no snapshot on disk, starting empty")
			return []catalog.Item{}, nil
		}
		return nil, errors.WrapIO("read snapshot", path, err)
	}

	var items []catalog.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	logging.Ctx(ctx).Debug().
		Str("path", path).
		Int("items", len(items)).
		Msg("snapshot loaded")
	return items, nil
}
