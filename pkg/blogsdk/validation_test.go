package blogsdk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    RegisterRequest
		fields []string
	}{
		{"valid with password", RegisterRequest{Email: "a@example.com", Name: "A", Password: "secret123"}, nil},
		{"valid oauth only", RegisterRequest{Email: "a@example.com", Name: "A"}, nil},
		{"missing email", RegisterRequest{Name: "A"}, []string{"email"}},
		{"bad email", RegisterRequest{Email: "nope", Name: "A"}, []string{"email"}},
		{"blank name", RegisterRequest{Email: "a@example.com", Name: "   "}, []string{"name"}},
		{"short password", RegisterRequest{Email: "a@example.com", Name: "A", Password: "short"}, []string{"password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := tt.req.Validate()
			if tt.fields == nil {
				require.Empty(t, errs)
				return
			}
			for _, f := range tt.fields {
				require.Contains(t, errs, f)
			}
		})
	}
}

func TestResetPasswordRequestValidate(t *testing.T) {
	t.Parallel()

	errs := ResetPasswordRequest{Token: "t", NewPassword: "1234567"}.Validate()
	require.Equal(t, "too short (min 8)", errs["new_password"])

	require.Empty(t, ResetPasswordRequest{Token: "t", NewPassword: "12345678"}.Validate())
	require.Equal(t, requiredReason, ResetPasswordRequest{NewPassword: "12345678"}.Validate()["token"])
}

func TestPostRequestsValidate(t *testing.T) {
	t.Parallel()

	t.Run("create requires title and content", func(t *testing.T) {
		errs := PostCreateRequest{}.Validate()
		require.Contains(t, errs, "title")
		require.Contains(t, errs, "content")
	})

	t.Run("create rejects long title", func(t *testing.T) {
		errs := PostCreateRequest{Title: strings.Repeat("x", 201), Content: "c"}.Validate()
		require.Contains(t, errs, "title")
	})

	t.Run("update allows empty body", func(t *testing.T) {
		require.Empty(t, PostUpdateRequest{}.Validate())
	})

	t.Run("update rejects blank title and bad category", func(t *testing.T) {
		blank := " "
		errs := PostUpdateRequest{Title: &blank, CategoryID: Some(int64(0))}.Validate()
		require.Contains(t, errs, "title")
		require.Contains(t, errs, "category_id")
	})

	t.Run("update allows clearing category", func(t *testing.T) {
		require.Empty(t, PostUpdateRequest{CategoryID: Null[int64]()}.Validate())
	})
}

func TestCategoryRequestValidate(t *testing.T) {
	t.Parallel()

	require.Empty(t, CategoryRequest{Name: "Tech"}.Validate())
	require.Contains(t, CategoryRequest{}.Validate(), "name")
	require.Contains(t, CategoryRequest{Name: "\t"}.Validate(), "name")
}
