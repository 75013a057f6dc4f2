package models

import (
	"marketplace-api/internal/apperr"
)

// Validate cubre lo que los binding tags no expresan en un patch: un
// puntero presente pero apuntando a string vacío pasa omitempty, y acá
// se rechaza.
func (u *ProductUpdate) Validate() error {
	for field, value := range map[string]*string{
		"name":        u.Name,
		"description": u.Description,
		"category":    u.Category,
		"status":      u.Status,
	} {
		if value != nil && *value == "" {
			return apperr.Validation("%s cannot be empty", field)
		}
	}
	return nil
}

// Empty indica que el patch no trae ningún campo
func (u *ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Category == nil && u.Images == nil && u.Stock == nil && u.Status == nil
}
