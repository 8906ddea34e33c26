package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// categorySuggestions are the default categories the frontend offers
// in its forms. Transactions and budgets accept any category, this
// list is only a convenience.
var categorySuggestions = []string{
	"Salary",
	"Freelance",
	"Investment",
	"Food",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Bills",
	"Healthcare",
	"Education",
	"Other",
}

type CategoryListResponse struct {
	Data  []string `json:"data"`  // List of suggested categories
	Error *string  `json:"error"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetCategories)
}

// @Summary		Get categories
// @Description	Returns the list of suggested categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: categorySuggestions})
}
