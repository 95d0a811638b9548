package provider

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Refresher coalesces concurrent refreshes of the same refresh token into a
// single provider call. Providers that rotate refresh tokens invalidate the
// old one on use, so two racing refreshes would log one caller out.
type Refresher struct {
	client *Client
	group  singleflight.Group
}

func NewRefresher(client *Client) *Refresher {
	return &Refresher{client: client}
}

// Refresh runs at most one in-flight provider call per refresh token; every
// concurrent caller receives the same TokenSet or the same error.
func (r *Refresher) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	v, err, _ := r.group.Do(refreshToken, func() (any, error) {
		return r.client.Refresh(ctx, refreshToken)
	})
	if err != nil {
		return nil, err
	}
	return v.(*TokenSet), nil
}
