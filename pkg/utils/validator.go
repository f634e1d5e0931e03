package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"tracker-rental/pkg/apierr"
)

var validate *validator.Validate

var macAddressRegex = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := validate.RegisterValidation("mac_address", validateMACAddress)
	if err != nil {
		return
	}
}

// ValidateStruct validates a request struct and converts any failure into a
// 400 APIError whose message joins the per-field messages.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apierr.BadRequest("Dados inválidos")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, validationMessage(fieldErr))
	}
	return apierr.BadRequest(strings.Join(messages, ", "))
}

func validateMACAddress(fl validator.FieldLevel) bool {
	return macAddressRegex.MatchString(fl.Field().String())
}

var fieldNames = map[string]string{
	"nome":          "Nome",
	"email":         "Email",
	"macAddress":    "MAC Address",
	"clienteId":     "ID do cliente",
	"dispositivoId": "ID do dispositivo",
}

func displayName(field string) string {
	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}

func validationMessage(fieldErr validator.FieldError) string {
	name := displayName(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return name + " é obrigatório"
	case "min":
		return name + " deve ter pelo menos " + fieldErr.Param() + " caracteres"
	case "max":
		return name + " deve ter no máximo " + fieldErr.Param() + " caracteres"
	case "email":
		return name + " deve ter um formato válido"
	case "mac_address":
		return name + " deve estar no formato XX:XX:XX:XX:XX:XX ou XX-XX-XX-XX-XX-XX"
	default:
		return name + " é inválido"
	}
}
