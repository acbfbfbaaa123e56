package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Libro de stock.
	ErrItemNotFound      = errors.New("artículo no encontrado")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero mayor que cero")
	ErrInvalidPrice      = errors.New("el precio unitario no puede ser negativo")
	ErrInsufficientStock = errors.New("stock insuficiente para la salida")
	ErrWouldUnderflow    = errors.New("no se puede eliminar el movimiento: el stock quedaría negativo")
	ErrDeleteBlocked     = errors.New("no se puede eliminar: tiene movimientos o referencias asociadas")

	// Solicitudes de stock.
	ErrInvalidTransition = errors.New("transición de estado no permitida")
)
