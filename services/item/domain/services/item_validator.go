// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"

	itemdomain "github.com/ghuser/itemregistry/services/item/domain"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// Field-level messages shared with the HTTP wire layer.
const (
	MsgNameBlank     = "Name must not be blank"
	MsgPricePositive = "Price must be greater than 0"
)

// MsgNameTooLong is the message for names over models.MaxItemNameLength characters.
var MsgNameTooLong = fmt.Sprintf("Name must be at most %d characters", models.MaxItemNameLength)

// ValidateItemForCreation checks the create input and returns a *ValidationError
// listing every violation, or nil. Rules are evaluated independently:
//   - name must not be blank (whitespace-only counts as blank)
//   - name must be at most models.MaxItemNameLength characters
//   - price must be greater than 0
func ValidateItemForCreation(name models.ItemName, price int) error {
	ve := &itemdomain.ValidationError{}

	switch {
	case name.IsBlank():
		ve.Add("name", MsgNameBlank)
	case name.Length() > models.MaxItemNameLength:
		ve.Add("name", MsgNameTooLong)
	}

	if price <= 0 {
		ve.Add("price", MsgPricePositive)
	}

	return ve.OrNil()
}
