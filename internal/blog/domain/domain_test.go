package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPostPatchApply(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }
	id := func(v int64) *int64 { return &v }

	base := func() Post {
		return Post{
			Title:      "Title",
			Content:    "Content",
			ImageURL:   str("https://img"),
			CategoryID: id(1),
			Category:   &Category{ID: 1, Name: "Tech"},
		}
	}

	tests := []struct {
		name  string
		patch PostPatch
		check func(t *testing.T, p Post)
	}{
		{
			name:  "empty patch changes nothing",
			patch: PostPatch{},
			check: func(t *testing.T, p Post) { require.Equal(t, base(), p) },
		},
		{
			name:  "title only",
			patch: PostPatch{Title: str("New")},
			check: func(t *testing.T, p Post) {
				require.Equal(t, "New", p.Title)
				require.Equal(t, "Content", p.Content)
				require.Equal(t, "https://img", *p.ImageURL)
				require.EqualValues(t, 1, *p.CategoryID)
				require.NotNil(t, p.Category)
			},
		},
		{
			name:  "clear optional columns",
			patch: PostPatch{ClearImageURL: true, ClearCategory: true},
			check: func(t *testing.T, p Post) {
				require.Nil(t, p.ImageURL)
				require.Nil(t, p.CategoryID)
				require.Nil(t, p.Category)
			},
		},
		{
			name:  "move category drops the stale embed",
			patch: PostPatch{CategoryID: id(2)},
			check: func(t *testing.T, p Post) {
				require.EqualValues(t, 2, *p.CategoryID)
				require.Nil(t, p.Category)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := base()
			tt.patch.Apply(&p)
			tt.check(t, p)
		})
	}
}

func TestResetTokenMatches(t *testing.T) {
	t.Parallel()

	now := time.Now()
	later := now.Add(time.Hour)
	u := User{ResetToken: "fp", ResetTokenExpires: &later}

	require.True(t, u.ResetTokenMatches("fp", now))
	require.False(t, u.ResetTokenMatches("other", now))
	require.False(t, u.ResetTokenMatches("fp", later.Add(time.Second)))
	require.False(t, User{}.ResetTokenMatches("", now))
	require.False(t, User{PasswordHash: ""}.HasPassword())
}
