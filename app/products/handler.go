package products

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"products-api/app/api"
	"products-api/models"
)

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Stock       uint    `json:"stock"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ListResponse struct {
	Data       []ProductResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type DeleteResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// ProductRequest is the create/update body. Pointer fields distinguish a
// supplied value from an omitted one, which update relies on for its merge.
type ProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

type ProductProvider interface {
	GetFilteredProducts(offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, patch models.ProductPatch) (*models.Product, error)
	DeleteProduct(id uint) (*models.Product, error)
}

type ProductsHandler struct {
	repo ProductProvider
}

func NewProductsHandler(r ProductProvider) *ProductsHandler {
	return &ProductsHandler{
		repo: r,
	}
}

// HandleList returns one page of products, optionally filtered by category.
//
//	@Summary	List products with pagination
//	@Tags		products
//	@Produce	json
//	@Param		category	query		string	false	"Filter by category name"
//	@Param		page		query		int		false	"Page number (default 1)"
//	@Param		limit		query		int		false	"Page size (default 10)"
//	@Success	200			{object}	products.ListResponse
//	@Router		/products [get]
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 10

	if pStr := r.URL.Query().Get("page"); pStr != "" {
		if p, err := strconv.Atoi(pStr); err == nil && p >= 1 {
			page = p
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil && l >= 1 {
			limit = l
		}
	}

	filters := models.ProductFilters{
		Category: r.URL.Query().Get("category"),
	}

	offset := (page - 1) * limit

	res, total, err := h.repo.GetFilteredProducts(offset, limit, filters)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	data := make([]ProductResponse, len(res))
	for i, p := range res {
		data[i] = toResponse(&p)
	}

	api.JSON(w, http.StatusOK, ListResponse{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      int(total),
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	})
}

// HandleGet fetches a single product by id.
//
//	@Summary	Get a product by ID
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	products.ProductResponse
//	@Failure	404	{object}	map[string]string
//	@Router		/products/{id} [get]
func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	api.JSON(w, http.StatusOK, toResponse(product))
}

// HandleCreate creates a product inside an existing category.
//
//	@Summary	Create a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		products.ProductRequest	true	"Product to create"
//	@Success	201		{object}	products.ProductResponse
//	@Failure	400		{object}	map[string]string
//	@Router		/products [post]
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == nil || *input.Name == "" || input.Price == nil || input.Category == nil || *input.Category == "" || input.Stock == nil {
		api.Error(w, http.StatusBadRequest, "Missing required fields: name, price, category, stock")
		return
	}
	if *input.Price < 0 {
		api.Error(w, http.StatusBadRequest, "Price must be non-negative")
		return
	}
	if *input.Stock < 0 {
		api.Error(w, http.StatusBadRequest, "Stock must be non-negative")
		return
	}

	product := &models.Product{
		Name:     *input.Name,
		Price:    decimal.NewFromFloat(*input.Price),
		Category: *input.Category,
		Stock:    uint(*input.Stock),
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Image != nil {
		product.Image = *input.Image
	}

	if err := h.repo.CreateProduct(product); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.Error(w, http.StatusBadRequest, fmt.Sprintf("Category '%s' does not exist", *input.Category))
			return
		}
		api.Error(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(product))
}

// HandleUpdate applies a field-level merge: supplied fields replace the
// stored values, omitted fields are left untouched.
//
//	@Summary	Update a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Product ID"
//	@Param		product	body		products.ProductRequest	true	"Fields to update"
//	@Success	200		{object}	products.ProductResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/products/{id} [put]
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var input ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Price != nil && *input.Price < 0 {
		api.Error(w, http.StatusBadRequest, "Price must be non-negative")
		return
	}
	if input.Stock != nil && *input.Stock < 0 {
		api.Error(w, http.StatusBadRequest, "Stock must be non-negative")
		return
	}

	patch := models.ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Category:    input.Category,
	}
	if input.Price != nil {
		price := decimal.NewFromFloat(*input.Price)
		patch.Price = &price
	}
	if input.Stock != nil {
		stock := uint(*input.Stock)
		patch.Stock = &stock
	}

	product, err := h.repo.UpdateProduct(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrProductNotFound):
			api.Error(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, models.ErrCategoryNotFound):
			api.Error(w, http.StatusBadRequest, fmt.Sprintf("Category '%s' does not exist", *input.Category))
		default:
			api.Error(w, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}

	api.JSON(w, http.StatusOK, toResponse(product))
}

// HandleDelete removes a product.
//
//	@Summary	Delete a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	products.DeleteResponse
//	@Failure	404	{object}	map[string]string
//	@Router		/products/{id} [delete]
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.repo.DeleteProduct(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	api.JSON(w, http.StatusOK, DeleteResponse{
		Message: "Product deleted",
		Product: toResponse(product),
	})
}

func toResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Image:       p.Image,
		Category:    p.Category,
		Stock:       p.Stock,
	}
}

func productID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		api.Error(w, http.StatusNotFound, "Product not found")
		return 0, false
	}
	return uint(id), true
}
