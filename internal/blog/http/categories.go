package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
)

// CategoriesHandler serves /api/categories.
type CategoriesHandler struct {
	Categories *service.CategoryService
}

// HandleList handles GET /api/categories
//
//	@Summary		List categories
//	@Tags			Categories
//	@Produce		json
//	@Param			skip	query		int						false	"Categories to skip"		default(0)
//	@Param			limit	query		int						false	"Maximum categories (max 100)"	default(100)
//	@Success		200		{object}	blogsdk.CategoryList	"categories"
//	@Failure		400		{object}	blogsdk.APIError		"Invalid skip or limit"
//	@Router			/api/categories [get].
func (h *CategoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, service.DefaultCategoryLimit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	cats, err := h.Categories.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := blogsdk.CategoryList{Categories: make([]blogsdk.CategoryResponse, 0, len(cats))}
	for _, c := range cats {
		resp.Categories = append(resp.Categories, toCategoryResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /api/categories/{id}
//
//	@Summary		Get category
//	@Tags			Categories
//	@Produce		json
//	@Param			id	path		int							true	"Category ID"
//	@Success		200	{object}	blogsdk.CategoryResponse	"Category"
//	@Failure		404	{object}	blogsdk.APIError			"error, error_description"
//	@Router			/api/categories/{id} [get].
func (h *CategoriesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	c, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCategoryResponse(c))
}

// HandleCreate handles POST /api/categories
//
//	@Summary		Create category
//	@Description	Category names are unique.
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		blogsdk.CategoryRequest		true	"Category"
//	@Success		201		{object}	blogsdk.CategoryResponse	"Created category"
//	@Failure		400		{object}	blogsdk.APIError			"Name already exists"
//	@Failure		401		{object}	blogsdk.APIError			"error, error_description"
//	@Failure		403		{object}	blogsdk.APIError			"error, error_description"
//	@Router			/api/categories [post].
func (h *CategoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.Categories.Create(r.Context(), domain.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCategoryResponse(created))
}

// HandleUpdate handles PUT /api/categories/{id}
//
//	@Summary		Replace category
//	@Description	Full replacement: name is required and description is overwritten.
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Category ID"
//	@Param			request	body		blogsdk.CategoryRequest		true	"Category"
//	@Success		200		{object}	blogsdk.CategoryResponse	"Updated category"
//	@Failure		400		{object}	blogsdk.APIError			"Name already exists"
//	@Failure		401		{object}	blogsdk.APIError			"error, error_description"
//	@Failure		403		{object}	blogsdk.APIError			"error, error_description"
//	@Failure		404		{object}	blogsdk.APIError			"error, error_description"
//	@Router			/api/categories/{id} [put].
func (h *CategoriesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req blogsdk.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.Categories.Update(r.Context(), domain.Category{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCategoryResponse(updated))
}

// HandleDelete handles DELETE /api/categories/{id}
//
//	@Summary		Delete category
//	@Description	Posts in the category are kept with category_id cleared.
//	@Tags			Categories
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Category ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	blogsdk.APIError	"error, error_description"
//	@Failure		403	{object}	blogsdk.APIError	"error, error_description"
//	@Failure		404	{object}	blogsdk.APIError	"error, error_description"
//	@Router			/api/categories/{id} [delete].
func (h *CategoriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Categories.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
