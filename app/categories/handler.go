package categories

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"products-api/app/api"
	"products-api/models"
)

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type DeleteResponse struct {
	Message  string           `json:"message"`
	Category CategoryResponse `json:"category"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error
	RenameCategory(id uint, name string) (*models.Category, error)
	DeleteCategory(id uint) (*models.Category, error)
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

// HandleGetAll lists every category.
//
//	@Summary	List all categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	categories.CategoryResponse
//	@Router		/categories [get]
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = toResponse(&c)
	}

	api.JSON(w, http.StatusOK, response)
}

// HandleCreate creates a new category.
//
//	@Summary	Create a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		categories.CreateRequest	true	"Category to create"
//	@Success	201			{object}	categories.CategoryResponse
//	@Failure	400			{object}	map[string]string
//	@Router		/categories [post]
func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" {
		api.Error(w, http.StatusBadRequest, "Missing required field: name")
		return
	}

	category := &models.Category{Name: input.Name}
	if err := h.repo.CreateCategory(category); err != nil {
		if errors.Is(err, models.ErrCategoryExists) {
			api.Error(w, http.StatusBadRequest, fmt.Sprintf("Category '%s' already exists", input.Name))
			return
		}
		api.Error(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(category))
}

// HandleRename changes a category's name. Every product referencing the old
// name is carried along in the same transaction.
//
//	@Summary	Rename a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int							true	"Category ID"
//	@Param		category	body		categories.CreateRequest	true	"New name"
//	@Success	200			{object}	categories.CategoryResponse
//	@Failure	400			{object}	map[string]string
//	@Failure	404			{object}	map[string]string
//	@Router		/categories/{id} [put]
func (h *CategoryHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	id, ok := categoryID(w, r)
	if !ok {
		return
	}

	var input CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" {
		api.Error(w, http.StatusBadRequest, "Missing required field: name")
		return
	}

	category, err := h.repo.RenameCategory(id, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryNotFound):
			api.Error(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, models.ErrCategoryExists):
			api.Error(w, http.StatusBadRequest, fmt.Sprintf("Category '%s' already exists", input.Name))
		default:
			api.Error(w, http.StatusInternalServerError, "Failed to rename category")
		}
		return
	}

	api.JSON(w, http.StatusOK, toResponse(category))
}

// HandleDelete removes a category that no product references.
//
//	@Summary	Delete a category
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	categories.DeleteResponse
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/categories/{id} [delete]
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := categoryID(w, r)
	if !ok {
		return
	}

	category, err := h.repo.DeleteCategory(id)
	if err != nil {
		var inUse *models.CategoryInUseError
		switch {
		case errors.Is(err, models.ErrCategoryNotFound):
			api.Error(w, http.StatusNotFound, "Category not found")
		case errors.As(err, &inUse):
			api.Error(w, http.StatusBadRequest, inUse.Error())
		default:
			api.Error(w, http.StatusInternalServerError, "Failed to delete category")
		}
		return
	}

	api.JSON(w, http.StatusOK, DeleteResponse{
		Message:  "Category deleted",
		Category: toResponse(category),
	})
}

type CreateRequest struct {
	Name string `json:"name"`
}

func toResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

// categoryID parses the {id} path value. A non-numeric id matches no row, so
// it reports not found rather than a parse failure.
func categoryID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		api.Error(w, http.StatusNotFound, "Category not found")
		return 0, false
	}
	return uint(id), true
}
