package handlers

import (
	"fmt"
	"strconv"

	"github.com/borsibaar/barpos/internal/dto"
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/middleware"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/gin-gonic/gin"
)

// Validatable is implemented by request bodies with rules that binding tags cannot express.
type Validatable interface {
	Validate() error
}

// bindJSON binds and validates the request body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if details := dto.ValidationDetails(err); details != nil {
			apierrors.BadRequestWithDetails(c, "Validation failed", details)
		} else {
			apierrors.BadRequest(c, "Invalid request body")
		}
		return false
	}

	if v, ok := req.(Validatable); ok {
		if err := v.Validate(); err != nil {
			apierrors.BadRequest(c, err.Error())
			return false
		}
	}
	return true
}

// idParam parses a positive numeric path parameter.
func idParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return id, true
}

// currentUser returns the principal of an organization-scoped request.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, err := middleware.CurrentPrincipal(c)
	if err != nil {
		apierrors.Respond(c, err)
		return nil, false
	}
	return user, true
}
