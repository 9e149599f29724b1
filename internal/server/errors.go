package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogdomain "github.com/Kavindya2002/mc-computers-invoicing/internal/catalog/domain"
	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
)

// AbortWithError maps domain errors onto the wire contract: validation
// failures are 400 {Message}, unknown ids are 404 {Message}, everything
// else is the generic 500 envelope. Full detail goes to the log via the
// attached context error; the body never carries a stack trace.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, invoicedomain.ErrEmptyInvoice):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"Message": "Invoice must have at least one item"})
	case errors.Is(err, invoicedomain.ErrMissingCustomerInfo):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"Message": "Customer name and phone are required"})
	case errors.Is(err, invoicedomain.ErrInvalidInvoiceID),
		errors.Is(err, invoicedomain.ErrInvoiceNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"Message": "Invoice not found"})
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"Message": "Product not found"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, serverFault(err))
	}
}

func serverFault(err error) gin.H {
	fault := gin.H{
		"StatusCode": http.StatusInternalServerError,
		"Message":    "An unexpected error occurred",
	}
	if err != nil {
		fault["Detail"] = err.Error()
	}
	return fault
}

// recovery converts panics into the generic 500 envelope.
func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.log.Error("panic recovered", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, serverFault(nil))
	})
}

func invalidRequestBody(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"Message": "Invoice object is null"})
}
