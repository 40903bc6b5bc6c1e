package blogsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges email and password for tokens using the form flow. The
// access token is kept for later calls and the refresh cookie lands in the
// jar.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	resp, err := c.doForm(ctx, http.MethodPost, "/api/auth/login", url.Values{
		"username": {email},
		"password": {password},
	})
	if err != nil {
		return nil, err
	}
	return c.storeTokens(resp)
}

// Refresh rotates the refresh cookie and returns a new access token.
func (c *Client) Refresh(ctx context.Context) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/refresh", nil, nil)
	if err != nil {
		return nil, err
	}
	return c.storeTokens(resp)
}

// Logout revokes the current tokens and forgets the access token.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	if err != nil {
		return err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return err
	}
	c.SetAccessToken("")
	return nil
}

// Me returns the caller's profile.
func (c *Client) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// RequestPasswordReset asks for a reset email. The answer is the same for
// known and unknown addresses.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*PasswordResetResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/password-reset", PasswordResetRequest{Email: email})
	if err != nil {
		return nil, err
	}

	var out PasswordResetResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password", ResetPasswordRequest{
		Token:       token,
		NewPassword: newPassword,
	})
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoogleAuthURL returns the Google consent URL. An empty redirectURI uses
// the server default.
func (c *Client) GoogleAuthURL(ctx context.Context, redirectURI string) (*GoogleAuthURLResponse, error) {
	path := "/api/auth/google/auth-url"
	if redirectURI != "" {
		path += "?" + url.Values{"redirect_uri": {redirectURI}}.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out GoogleAuthURLResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoogleLogin exchanges a Google authorization code for tokens.
func (c *Client) GoogleLogin(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/google/login", GoogleLoginRequest{
		Code:        code,
		RedirectURI: redirectURI,
	})
	if err != nil {
		return nil, err
	}
	return c.storeTokens(resp)
}

// SetAdmin grants or revokes admin on another user. Admin only.
func (c *Client) SetAdmin(ctx context.Context, userID string, isAdmin bool) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, "/api/auth/users/"+url.PathEscape(userID)+"/admin", SetAdminRequest{IsAdmin: isAdmin})
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) storeTokens(resp *http.Response) (*TokenResponse, error) {
	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	c.SetAccessToken(tok.AccessToken)
	return &tok, nil
}
