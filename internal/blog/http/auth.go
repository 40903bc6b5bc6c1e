package http

import (
	"mime"
	"net/http"

	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// AuthHandler serves /api/auth.
type AuthHandler struct {
	Sessions *service.SessionService
	OAuth    *service.OAuthBridge
	Users    *service.UserService

	// CookieSecure sets the Secure flag on the refresh cookie.
	CookieSecure bool
	// ExposeResetToken echoes the reset token in the reset-request response.
	ExposeResetToken bool
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register
//	@Description	Creates an account. is_admin is only honoured for the first account.
//	@Description	Without a password the account can only sign in through Google.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.RegisterRequest			true	"Account details"
//	@Success		200		{object}	blogsdk.UserResponse			"Created user"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		400		{object}	blogsdk.APIError				"Email already registered"
//	@Failure		500		{object}	blogsdk.APIError				"error, error_description"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req blogsdk.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.Sessions.Register(ctx, service.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Login
//	@Description	Exchanges email and password for an access token. The refresh token is set as the
//	@Description	HTTP-only refresh_token cookie. Accepts a form (username, password) or a JSON body.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Accept			json
//	@Produce		json
//	@Param			username	formData	string					true	"Email address"
//	@Param			password	formData	string					true	"Password"
//	@Success		200			{object}	blogsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400			{object}	blogsdk.APIError		"error, error_description"
//	@Failure		401			{object}	blogsdk.APIError		"error, error_description"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse credentials from either encoding
	var req blogsdk.LoginRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if !decodeAndValidate(w, r, &req) {
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			blogsdk.ErrBadRequest.WithDescription("invalid form body").WriteError(w)
			return
		}
		req.Email = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
		if errs := req.Validate(); len(errs) > 0 {
			// Report the form field names
			if reason, ok := errs["email"]; ok {
				delete(errs, "email")
				errs["username"] = reason
			}
			writeValidationError(w, errs)
			return
		}
	}

	pair, _, err := h.Sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		if isUnauthorized(err) {
			blogsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	setRefreshCookie(w, pair, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, toTokenResponse(pair))
}

// HandleRefresh handles POST /api/auth/refresh
//
//	@Summary		Refresh
//	@Description	Rotates the refresh_token cookie and returns a new access token. The presented
//	@Description	refresh token is revoked and cannot be used again.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	blogsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		401	{object}	blogsdk.APIError		"error, error_description"
//	@Router			/api/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := refreshCookie(r)
	if token == "" {
		blogsdk.ErrUnauthorized.WithDescription("refresh token missing").WriteError(w)
		return
	}

	pair, err := h.Sessions.Refresh(ctx, token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setRefreshCookie(w, pair, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, toTokenResponse(pair))
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Logout
//	@Description	Revokes the refresh cookie and the bearer token when present, then clears the cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	blogsdk.MessageResponse	"message"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	access, _ := httpx.BearerToken(r)
	h.Sessions.Logout(r.Context(), refreshCookie(r), access)

	clearRefreshCookie(w, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: "Successfully logged out"})
}

// HandleMe handles GET /api/auth/me
//
//	@Summary		Current user
//	@Description	Returns the profile of the bearer token's subject.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	blogsdk.UserResponse	"Current user"
//	@Failure		401	{object}	blogsdk.APIError		"error, error_description"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token, ok := httpx.BearerToken(r)
	if !ok {
		blogsdk.ErrUnauthorized.WriteError(w)
		return
	}

	user, _, err := h.Sessions.CurrentUser(ctx, token)
	if err != nil {
		if isUnauthorized(err) {
			log.Info("bearer token rejected", "error", err)
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandlePasswordReset handles POST /api/auth/password-reset
//
//	@Summary		Request password reset
//	@Description	Issues a password reset token and mails the reset link when a mailer is configured.
//	@Description	The response is the same whether or not the email is registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.PasswordResetRequest	true	"Email address"
//	@Success		200		{object}	blogsdk.PasswordResetResponse	"message, token"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse	"Validation failed"
//	@Router			/api/auth/password-reset [post].
func (h *AuthHandler) HandlePasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req blogsdk.PasswordResetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.Sessions.RequestPasswordReset(ctx, req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := blogsdk.PasswordResetResponse{Message: "Password reset email has been sent"}
	if h.ExposeResetToken {
		resp.Token = token
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleResetPassword handles POST /api/auth/reset-password
//
//	@Summary		Reset password
//	@Description	Sets a new password using an outstanding reset token. Each token works once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.ResetPasswordRequest	true	"token, new_password"
//	@Success		200		{object}	blogsdk.MessageResponse			"message"
//	@Failure		400		{object}	blogsdk.APIError				"Invalid token"
//	@Failure		404		{object}	blogsdk.APIError				"User not found"
//	@Router			/api/auth/reset-password [post].
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req blogsdk.ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.Sessions.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: "Password has been reset successfully"})
}

// HandleGoogleAuthURL handles GET /api/auth/google/auth-url
//
//	@Summary		Google consent URL
//	@Description	Returns the Google consent URL the browser should be sent to.
//	@Tags			Auth
//	@Produce		json
//	@Param			redirect_uri	query		string							false	"Overrides the configured redirect URI"
//	@Success		200				{object}	blogsdk.GoogleAuthURLResponse	"auth_url"
//	@Failure		502				{object}	blogsdk.APIError				"Google sign-in not configured"
//	@Router			/api/auth/google/auth-url [get].
func (h *AuthHandler) HandleGoogleAuthURL(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.OAuth.AuthURL(r.URL.Query().Get("redirect_uri"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogsdk.GoogleAuthURLResponse{AuthURL: authURL})
}

// HandleGoogleLogin handles POST /api/auth/google/login
//
//	@Summary		Google login
//	@Description	Exchanges a Google authorization code for a session. The ID token is verified
//	@Description	against Google's published keys; unknown emails get an account provisioned.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.GoogleLoginRequest	true	"code, redirect_uri"
//	@Success		200		{object}	blogsdk.TokenResponse		"access_token, token_type, expires_in"
//	@Failure		400		{object}	blogsdk.APIError			"Invalid code or identity"
//	@Failure		502		{object}	blogsdk.APIError			"Google unreachable"
//	@Router			/api/auth/google/login [post].
func (h *AuthHandler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req blogsdk.GoogleLoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pair, _, err := h.OAuth.LoginWithCode(ctx, req.Code, req.RedirectURI)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setRefreshCookie(w, pair, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, toTokenResponse(pair))
}

// HandleSetAdmin handles PUT /api/auth/users/{id}/admin
//
//	@Summary		Grant or revoke admin
//	@Description	Sets the admin flag on a user. Admin only.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"User ID"
//	@Param			request	body		blogsdk.SetAdminRequest	true	"is_admin"
//	@Success		200		{object}	blogsdk.UserResponse	"Updated user"
//	@Failure		401		{object}	blogsdk.APIError		"error, error_description"
//	@Failure		403		{object}	blogsdk.APIError		"error, error_description"
//	@Failure		404		{object}	blogsdk.APIError		"error, error_description"
//	@Router			/api/auth/users/{id}/admin [put].
func (h *AuthHandler) HandleSetAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		blogsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req blogsdk.SetAdminRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.Users.SetAdmin(ctx, principal.UserID, r.PathValue("id"), req.IsAdmin)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
