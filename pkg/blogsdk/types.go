package blogsdk

import (
	"bytes"
	"encoding/json"
	"time"
)

// ============================================================================
// Errors
// ============================================================================

// ValidationErrorResponse is written when request fields fail validation.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	Message string `json:"message"`

	// Details maps JSON field names to what is wrong with them
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Auth
// ============================================================================

// RegisterRequest creates an account. Without a password the account can
// only sign in through Google.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=128"`

	// IsAdmin is only honoured for the very first account.
	IsAdmin bool `json:"is_admin"`
}

// LoginRequest is the JSON alternative to the username/password form. Email
// is only required; an identity that is not an address fails as bad
// credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	IsAdmin        bool      `json:"is_admin"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TokenResponse carries the access token. The refresh token is only ever
// sent as the refresh_token cookie.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetResponse looks the same whether or not the email is known.
type PasswordResetResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=128"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type GoogleAuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}

type GoogleLoginRequest struct {
	Code        string `json:"code" validate:"required"`
	RedirectURI string `json:"redirect_uri,omitempty" validate:"omitempty,url"`
}

type SetAdminRequest struct {
	IsAdmin bool `json:"is_admin"`
}

// ============================================================================
// Posts
// ============================================================================

type PostCreateRequest struct {
	Title      string  `json:"title" validate:"required,max=200"`
	Content    string  `json:"content" validate:"required"`
	ImageURL   *string `json:"image_url,omitempty" validate:"omitempty,max=2048"`
	CategoryID *int64  `json:"category_id,omitempty" validate:"omitempty,gt=0"`
}

// PostUpdateRequest is a partial update: absent fields are left alone and an
// explicit null clears image_url or category_id.
type PostUpdateRequest struct {
	Title      *string         `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content    *string         `json:"content,omitempty" validate:"omitempty,min=1"`
	ImageURL   Nullable[string] `json:"image_url,omitzero"`
	CategoryID Nullable[int64]  `json:"category_id,omitzero"`
}

type PostResponse struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	ImageURL   *string           `json:"image_url"`
	CategoryID *int64            `json:"category_id"`
	Category   *CategoryResponse `json:"category"`
	AuthorID   *string           `json:"author_id,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type PostList struct {
	Posts []PostResponse `json:"posts"`
}

// ============================================================================
// Categories
// ============================================================================

// CategoryRequest is used for both create and full replacement.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CategoryList struct {
	Categories []CategoryResponse `json:"categories"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is served by /api/health, /livez and /readyz.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime,omitempty"`
	Version string `json:"version,omitempty"`

	// Checks maps a dependency to "ok" or its failure, only on /readyz.
	Checks map[string]string `json:"checks,omitempty"`
}

// ============================================================================
// Nullable
// ============================================================================

// Nullable distinguishes a JSON field that is absent, explicitly null, or
// set to a value.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a Nullable holding v.
func Some[T any](v T) Nullable[T] { return Nullable[T]{Set: true, Value: v} }

// Null returns a Nullable that encodes as JSON null.
func Null[T any]() Nullable[T] { return Nullable[T]{Set: true, Null: true} }

// IsZero reports an absent field, so omitzero drops it when encoding.
func (n Nullable[T]) IsZero() bool { return !n.Set }

// Ptr returns the value, or nil when absent or null.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || n.Null {
		return nil
	}
	v := n.Value
	return &v
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Null = true
		var zero T
		n.Value = zero
		return nil
	}
	n.Null = false
	return json.Unmarshal(b, &n.Value)
}
