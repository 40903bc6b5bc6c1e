package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// PostsHandler serves /api/posts. Reads are public, writes are admin only.
type PostsHandler struct {
	Posts *service.PostService
}

// HandleList handles GET /api/posts
//
//	@Summary		List posts
//	@Description	Returns posts ordered by id, each with its category embedded.
//	@Tags			Posts
//	@Produce		json
//	@Param			skip	query		int					false	"Posts to skip"				default(0)
//	@Param			limit	query		int					false	"Maximum posts (max 100)"	default(10)
//	@Success		200		{object}	blogsdk.PostList	"posts"
//	@Failure		400		{object}	blogsdk.APIError	"Invalid skip or limit"
//	@Router			/api/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := parsePage(r, service.DefaultPostLimit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	posts, err := h.Posts.List(ctx, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := blogsdk.PostList{Posts: make([]blogsdk.PostResponse, 0, len(posts))}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, toPostResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /api/posts/{id}
//
//	@Summary		Get post
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		int						true	"Post ID"
//	@Success		200	{object}	blogsdk.PostResponse	"Post"
//	@Failure		404	{object}	blogsdk.APIError		"error, error_description"
//	@Router			/api/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.Posts.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponse(post))
}

// HandleCreate handles POST /api/posts
//
//	@Summary		Create post
//	@Description	Creates a post authored by the caller. category_id must reference an existing category.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		blogsdk.PostCreateRequest		true	"Post"
//	@Success		201		{object}	blogsdk.PostResponse			"Created post"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	blogsdk.APIError				"error, error_description"
//	@Failure		403		{object}	blogsdk.APIError				"error, error_description"
//	@Router			/api/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req blogsdk.PostCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post := domain.Post{
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
	}
	if p, ok := httpx.PrincipalFromContext(ctx); ok {
		author := p.UserID
		post.AuthorID = &author
	}

	created, err := h.Posts.Create(ctx, post)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("post created", "post_id", created.ID)
	httpx.WriteJSON(w, http.StatusCreated, toPostResponse(created))
}

// HandleUpdate handles PUT /api/posts/{id}
//
//	@Summary		Update post
//	@Description	Partial update. Absent fields are kept; null clears image_url or category_id.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Post ID"
//	@Param			request	body		blogsdk.PostUpdateRequest	true	"Fields to change"
//	@Success		200		{object}	blogsdk.PostResponse		"Updated post"
//	@Failure		400		{object}	blogsdk.APIError			"error, error_description"
//	@Failure		401		{object}	blogsdk.APIError			"error, error_description"
//	@Failure		403		{object}	blogsdk.APIError			"error, error_description"
//	@Failure		404		{object}	blogsdk.APIError			"error, error_description"
//	@Router			/api/posts/{id} [put].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req blogsdk.PostUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		req.Title = &t
	}

	updated, err := h.Posts.Update(ctx, id, toPostPatch(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponse(updated))
}

// HandleDelete handles DELETE /api/posts/{id}
//
//	@Summary		Delete post
//	@Tags			Posts
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Post ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	blogsdk.APIError	"error, error_description"
//	@Failure		403	{object}	blogsdk.APIError	"error, error_description"
//	@Failure		404	{object}	blogsdk.APIError	"error, error_description"
//	@Router			/api/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Posts.Delete(ctx, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("post deleted", "post_id", id)
	w.WriteHeader(http.StatusNoContent)
}
