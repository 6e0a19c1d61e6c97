package handler

import (
	"net/http"
	"reflect"

	"axonet/internal/apierror"
	"axonet/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps a kinded service error onto the HTTP status
// taxonomy and writes the canonical envelope. Unknown errors are pushed
// onto the Gin error list for the ErrorHandler middleware to log and
// convert into an opaque 500.
func writeServiceError(c *gin.Context, err error) {
	kind := service.KindOf(err)
	status, known := statusOf(kind)
	if !known {
		_ = c.Error(err)
		return
	}
	c.JSON(status, apierror.NewKind(kind.String(), err.Error()))
}

func statusOf(kind service.Kind) (int, bool) {
	switch kind {
	case service.KindUnauthenticated:
		return http.StatusUnauthorized, true
	case service.KindForbidden:
		return http.StatusForbidden, true
	case service.KindNotFound:
		return http.StatusNotFound, true
	case service.KindInvalidState, service.KindConflict:
		return http.StatusConflict, true
	case service.KindValidation:
		return http.StatusUnprocessableEntity, true
	}
	return 0, false
}

// parseUUIDParam parses a :id-style path parameter, writing a 400 on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid "+name+" parameter"))
		return uuid.Nil, false
	}
	return id, true
}
