package public

import (
	"errors"
	"strconv"

	"github.com/lumina-next/internal/http/response"
	"github.com/lumina-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts returns listed products, optionally narrowed to one category.
func (h *Handler) GetProducts(c *gin.Context) {
	categorySlug := c.Query("category")

	products, err := h.CatalogService.ListProducts(c.Request.Context(), categorySlug)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}

	response.Success(c, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct returns one product by id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.CatalogService.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}

	response.Success(c, gin.H{"product": product})
}

// GetCategories returns all product categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}

	response.Success(c, gin.H{"categories": categories})
}
