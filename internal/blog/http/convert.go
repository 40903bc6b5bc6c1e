package http

import (
	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
)

func toUserResponse(u domain.User) blogsdk.UserResponse {
	return blogsdk.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		IsAdmin:        u.IsAdmin,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toTokenResponse(pair domain.TokenPair) blogsdk.TokenResponse {
	return blogsdk.TokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(pair.ExpiresIn.Seconds()),
	}
}

func toCategoryResponse(c domain.Category) blogsdk.CategoryResponse {
	return blogsdk.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func toPostResponse(p domain.Post) blogsdk.PostResponse {
	resp := blogsdk.PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		ImageURL:   p.ImageURL,
		CategoryID: p.CategoryID,
		AuthorID:   p.AuthorID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Category != nil {
		c := toCategoryResponse(*p.Category)
		resp.Category = &c
	}
	return resp
}

// toPostPatch translates the wire partial update. An explicit null clears
// the optional fields.
func toPostPatch(req blogsdk.PostUpdateRequest) domain.PostPatch {
	return domain.PostPatch{
		Title:         req.Title,
		Content:       req.Content,
		ImageURL:      req.ImageURL.Ptr(),
		ClearImageURL: req.ImageURL.Set && req.ImageURL.Null,
		CategoryID:    req.CategoryID.Ptr(),
		ClearCategory: req.CategoryID.Set && req.CategoryID.Null,
	}
}
