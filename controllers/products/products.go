package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevZuhaib/luxe3d-api/models"
	"github.com/DevZuhaib/luxe3d-api/store"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity" binding:"min=0"`
}

// GET /products?category=Audio
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", store.AllCategoriesSentinel)
		c.JSON(http.StatusOK, s.ProductsByCategory(category))
	}
}

// GET /products/:id
func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := s.ProductByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /categories
func GetCategories(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Categories())
	}
}

// POST /admin/products
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product := s.AddProduct(models.Product{
			Name:        input.Name,
			Price:       input.Price,
			Description: input.Description,
			Category:    input.Category,
			Image:       input.Image,
			Quantity:    input.Quantity,
		})
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product := models.Product{
			ID:          c.Param("id"),
			Name:        input.Name,
			Price:       input.Price,
			Description: input.Description,
			Category:    input.Category,
			Image:       input.Image,
			Quantity:    input.Quantity,
		}
		if err := s.UpdateProduct(product); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteProduct(c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
