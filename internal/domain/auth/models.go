package auth

import "strings"

// Credentials are submitted to register or log in.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Normalize trims the username; passwords are sent as typed.
func (c Credentials) Normalize() Credentials {
	c.Username = strings.TrimSpace(c.Username)
	return c
}

// Token is the bearer credential returned by a successful login.
type Token struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}
