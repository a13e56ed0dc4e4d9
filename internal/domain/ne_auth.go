package domain

import "time"

type NEAuth struct {
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	RefreshesAt  time.Time `json:"refreshes_at"`
}

// ExpiresWithin indica se o access token vence dentro da janela informada
func (a *NEAuth) ExpiresWithin(now time.Time, window time.Duration) bool {
	return a.ExpiresAt.Before(now.Add(window))
}
