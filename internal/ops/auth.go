package ops

import (
	"context"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// CheckHealth reports whether the backend answers. A failure is not a
// notification: the dashboard shows it as offline.
func (a *App) CheckHealth(ctx context.Context) bool {
	h, err := a.Source.Health(ctx)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("health check failed")
		return false
	}
	return h.OK
}

// Login authenticates and stores the session. On failure the auth state is
// left untouched.
func (a *App) Login(ctx context.Context, email, password string) (model.User, error) {
	if err := required("email", email, "password", password); err != nil {
		return model.User{}, err
	}
	res, err := a.Source.Login(ctx, email, password)
	if err != nil {
		return model.User{}, a.fail("login", "Authentication failed", err)
	}
	if err := a.Stores.Auth.SetAuth(ctx, res.Token, res.User); err != nil {
		return model.User{}, a.fail("login", "Authentication failed", err)
	}
	a.success("Welcome back!", "Welcome back, "+model.FirstName(res.User.Name))
	return res.User, nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.Stores.Auth.Logout(ctx); err != nil {
		return a.fail("logout", "Logout Failed", err)
	}
	a.success("Signed out", "")
	return nil
}
