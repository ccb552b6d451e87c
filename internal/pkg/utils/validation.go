package utils

import (
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/exceptions"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("password", validatePassword)
	})
	return validate
}

func ValidateStruct(s interface{}) error {
	if err := getValidator().Struct(s); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	hasSpecial := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasSpecial && hasUppercase
}

// ValidateImageUpload checks the uploaded file's extension and size against
// the allowed property image formats and the configured limit.
func ValidateImageUpload(header *multipart.FileHeader, maxUploadSizeInMB int64) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	allowed := false
	for _, format := range constvars.ImageAllowedPropertyFormats {
		if ext == format {
			allowed = true
			break
		}
	}
	if !allowed {
		return exceptions.ErrImageValidation(nil)
	}
	if header.Size > maxUploadSizeInMB*1024*1024 {
		return exceptions.ErrImageValidation(nil)
	}
	return nil
}
