package commands

import (
	"context"

	"payref-console/internal/usecase/shared"
)

type AuthCommands interface {
	Login(ctx context.Context, username, password string) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

type authCommandsImpl struct {
	gateway shared.PaymentGateway
	cache   shared.DetailCache
}

func NewAuthCommands(gateway shared.PaymentGateway, cache shared.DetailCache) AuthCommands {
	return &authCommandsImpl{gateway: gateway, cache: cache}
}

// Login authenticates against the upstream API; on success the gateway holds
// the issued bearer token as the current session.
func (a *authCommandsImpl) Login(ctx context.Context, username, password string) error {
	return a.gateway.Authenticate(ctx, username, password)
}

func (a *authCommandsImpl) Refresh(ctx context.Context) error {
	return a.gateway.ForceRefresh(ctx)
}

// Logout discards the stored session token and drops every cached detail,
// so the next session starts from a clean fetch.
func (a *authCommandsImpl) Logout(ctx context.Context) error {
	if err := a.gateway.Logout(ctx); err != nil {
		return err
	}
	a.cache.Clear()
	return nil
}
