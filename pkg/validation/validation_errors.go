package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps json field names to user-facing Portuguese labels
var FieldLabels = map[string]string{
	// Job fields
	"title":       "Título",
	"description": "Descrição",
	"location":    "Localização",
	"salaryRange": "Faixa salarial",
	"skills":      "Habilidades",

	// Auth fields
	"email":    "Email",
	"password": "Senha",
}

// fieldMessages overrides the generic wording for specific field/tag pairs
var fieldMessages = map[string]string{
	"title.min":         "Título deve ter no mínimo 3 caracteres",
	"description.min":   "Descrição deve ter no mínimo 10 caracteres",
	"location.min":      "Localização é obrigatória",
	"salaryRange.min":   "Faixa salarial é obrigatória",
	"skills.min":        "Adicione pelo menos uma habilidade",
	"skills.unique":     "Habilidades não podem se repetir",
	"email.required":    "Email é obrigatório",
	"email.email":       "Email inválido",
	"password.required": "Senha é obrigatória",
}

// FormatFieldErrors converts validator errors into field -> message,
// keeping the first message per field.
func FormatFieldErrors(err error) map[string]string {
	out := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["_"] = err.Error()
		return out
	}

	for _, e := range validationErrors {
		field := baseField(e.Field())
		if _, exists := out[field]; exists {
			continue
		}
		out[field] = formatSingleError(field, e)
	}

	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(field string, e validator.FieldError) string {
	if msg, ok := fieldMessages[field+"."+e.Tag()]; ok {
		return msg
	}

	label := getFieldLabel(field)
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s deve ter no mínimo %s caracteres", label, param)
		}
		return fmt.Sprintf("%s deve ter no mínimo %s itens", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", label, param)
		}
		return fmt.Sprintf("%s deve ter no máximo %s itens", label, param)
	case "not_blank":
		return fmt.Sprintf("%s não pode conter itens vazios", label)
	case "email":
		return fmt.Sprintf("%s: formato inválido", label)
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: validação falhou (%s)", label, e.Tag())
	}
}

// baseField strips slice indexes: "skills[2]" -> "skills"
func baseField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
