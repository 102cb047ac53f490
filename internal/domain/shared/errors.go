package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Module-related errors

type ModuleError struct {
	*DomainError
}

func NewModuleError(message string) *ModuleError {
	return &ModuleError{DomainError: &DomainError{Message: message}}
}

type ModuleNotFoundError struct {
	*ModuleError
	Grp string
	ID  string
}

func NewModuleNotFoundError(grp, id string) *ModuleNotFoundError {
	return &ModuleNotFoundError{
		ModuleError: NewModuleError(fmt.Sprintf("module not found: %s/%s", grp, id)),
		Grp:         grp,
		ID:          id,
	}
}

type InvalidTemplateError struct {
	*ModuleError
}

func NewInvalidTemplateError(message string) *InvalidTemplateError {
	return &InvalidTemplateError{ModuleError: NewModuleError(message)}
}

// Loadout-related errors

type LoadoutError struct {
	*DomainError
}

func NewLoadoutError(message string) *LoadoutError {
	return &LoadoutError{DomainError: &DomainError{Message: message}}
}

type LoadoutNotFoundError struct {
	*LoadoutError
	LoadoutID string
}

func NewLoadoutNotFoundError(loadoutID string) *LoadoutNotFoundError {
	return &LoadoutNotFoundError{
		LoadoutError: NewLoadoutError(fmt.Sprintf("loadout not found: %s", loadoutID)),
		LoadoutID:    loadoutID,
	}
}

type InvalidLoadoutDataError struct {
	*LoadoutError
}

func NewInvalidLoadoutDataError(message string) *InvalidLoadoutDataError {
	return &InvalidLoadoutDataError{LoadoutError: NewLoadoutError(message)}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
