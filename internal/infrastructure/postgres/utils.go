package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE usados por los repositorios.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if code := pgCode(err); code != "" {
		return code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}

// isForeignKeyViolation: fila referenciada por otra tabla (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// isCheckViolation: CHECK constraint (ej. current_stock >= 0).
func isCheckViolation(err error) bool {
	return pgCode(err) == codeCheckViolation
}

// isInvalidID: texto que no convierte al tipo de la columna (ej. "abc" contra uuid, 22P02).
// Los repositorios lo tratan como fila inexistente.
func isInvalidID(err error) bool {
	return pgCode(err) == codeInvalidText
}

// nullIfEmpty convierte "" en NULL para columnas opcionales con índice único.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
