package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FilenameMaxLength is the longest filename a photo record may carry.
const FilenameMaxLength = 255

var photoFilenamePattern = regexp.MustCompile(`^[A-Za-z0-9_\-.]+\.(?i:jpg|jpeg|png|gif|webp|heic)$`)

var validate *validator.Validate

// messages maps a failed validation tag to the text returned to clients.
var messages = map[string]string{
	"required":       "Filename cannot be empty",
	"min":            "Filename must be between 1 and 255 characters",
	"max":            "Filename must be between 1 and 255 characters",
	"photo_filename": "Invalid filename format. Must be a valid image file",
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = validate.RegisterValidation("photo_filename", func(fl validator.FieldLevel) bool {
		return IsPhotoFilename(fl.Field().String())
	})
}

// IsPhotoFilename reports whether name has the shape of a storable image filename.
// Length is not checked here.
func IsPhotoFilename(name string) bool {
	return photoFilenamePattern.MatchString(name) && !strings.Contains(name, "..")
}

// Validate struct fields. Keys are json field names, values human-readable messages.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, err := range verrs {
		msg, ok := messages[err.Tag()]
		if !ok {
			msg = err.Tag()
		}
		errors[err.Field()] = msg
	}
	return errors
}
