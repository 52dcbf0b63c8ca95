package model

// TokenTypeBearer is the only token type the API hands out.
const TokenTypeBearer = "bearer"

// Token is the envelope returned by login and refresh.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}
