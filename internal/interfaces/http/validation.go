package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/gudang-api/internal/application/dto"
)

// Validador único del paquete (cachea la metadata de los structs).
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los mensajes usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseAndValidate lee el body JSON y valida los tags. Si falla ya escribe la respuesta
// y devuelve ok=false.
func parseAndValidate(c *fiber.Ctx, out any) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, badBody(c)
	}
	if fields := validationFields(out); fields != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos",
			Fields:  fields,
		})
	}
	return true, nil
}

// validationFields devuelve nil si el struct es válido, o un mensaje por campo JSON.
func validationFields(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		return "debe ser mayor o igual a " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "no puede superar " + fe.Param() + " caracteres"
		}
		return "debe ser menor o igual a " + fe.Param()
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "uuid":
		return "debe ser un UUID válido"
	}
	return "valor inválido"
}

// uuidParam devuelve el :id de la ruta. Un id que no es UUID no puede existir: notFound.
func uuidParam(c *fiber.Ctx, notFound error) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", notFound
	}
	return id, nil
}
