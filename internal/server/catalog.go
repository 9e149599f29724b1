package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/Kavindya2002/mc-computers-invoicing/internal/catalog/domain"
)

// @Summary      List Products
// @Description  List the product catalog used to build invoice lines
// @Tags         products
// @Produce      json
// @Success      200  {array}  catalogdomain.Product
// @Router       /api/products [get]
func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.catalogSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary      Get Product
// @Description  Get a catalog product by id
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  catalogdomain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (s *Server) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		AbortWithError(c, catalogdomain.ErrProductNotFound)
		return
	}
	product, err := s.catalogSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
