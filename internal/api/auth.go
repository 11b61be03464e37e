package api

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/fightcard-service/internal/domain/auth"
)

// Register creates an account.
func (c *Client) Register(ctx context.Context, creds auth.Credentials) error {
	creds = creds.Normalize()
	_, err := c.do(ctx, request{
		op:     OpRegister,
		method: http.MethodPost,
		path:   "/auth/register",
		body:   credentialsWire{Username: creds.Username, Password: creds.Password},
	}, nil)
	return err
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds auth.Credentials) (auth.Token, error) {
	creds = creds.Normalize()

	var payload tokenWire
	if _, err := c.do(ctx, request{
		op:     OpLogin,
		method: http.MethodPost,
		path:   "/auth/login",
		body:   credentialsWire{Username: creds.Username, Password: creds.Password},
	}, &payload); err != nil {
		return auth.Token{}, err
	}

	if payload.AccessToken == "" {
		return auth.Token{}, &Error{Op: OpLogin, Message: "login response did not include an access token"}
	}
	tokenType := payload.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}
	return auth.Token{AccessToken: payload.AccessToken, TokenType: tokenType}, nil
}
