package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

var registerOnce sync.Once

// RegisterValidators adds the enum validators to gin's binding engine
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("branch", validateBranch)
		_ = v.RegisterValidation("recipient_mode", validateRecipientMode)
	})
}

// validateBranch accepts an empty value, which clears the branch
func validateBranch(fl validator.FieldLevel) bool {
	_, err := models.ParseBranch(fl.Field().String())
	return err == nil
}

func validateRecipientMode(fl validator.FieldLevel) bool {
	_, err := models.ParseRecipientMode(fl.Field().String())
	return err == nil
}

// ValidateDepartment validates and returns the department from the URL parameter
func ValidateDepartment(c *gin.Context) (models.Department, bool) {
	dept, err := models.ParseDepartment(c.Param("department"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Department not found",
			Message: "Department must be one of: administration, marketing, investor-education, pms, real-estate",
		})
		return "", false
	}
	return dept, true
}
