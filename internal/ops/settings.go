package ops

import (
	"context"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/source"
)

// SetDataMode persists the mock/live flag. The running source is unchanged;
// the new mode is picked up on next start.
func (a *App) SetDataMode(ctx context.Context, persist kv.Store, cfg *config.Config, mode source.Mode) (bool, error) {
	if err := required("mode", string(mode)); err != nil {
		return false, err
	}
	changed, err := source.SetMode(ctx, persist, cfg, mode)
	if err != nil {
		return false, a.fail("set_mode", "Failed to update data mode", err)
	}
	desc := "Using mock data. Restart to apply."
	if mode == source.ModeLive {
		desc = "Using the live API. Restart to apply."
	}
	a.success("Data mode updated", desc)
	return changed, nil
}

// ClearCache signs out and drops every persisted and in-memory container.
func (a *App) ClearCache(ctx context.Context) error {
	if err := a.Stores.Reset(ctx); err != nil {
		return a.fail("clear_cache", "Failed to clear cache", err)
	}
	a.success("Cache cleared", "")
	return nil
}
