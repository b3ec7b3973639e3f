package models

import (
	"fmt"
	"strings"
)

// Department is one of the three fixed business units every manager view is
// scoped to. The URL token and the store type column use different
// vocabularies: "giftshop" stores carry type "gift", "foodanddrinks" stores
// carry type "food", and maintenance has no store type at all.
type Department string

const (
	DepartmentGiftShop      Department = "giftshop"
	DepartmentFoodAndDrinks Department = "foodanddrinks"
	DepartmentMaintenance   Department = "maintenance"
)

// Store type values as persisted in store.type.
const (
	StoreTypeGift = "gift"
	StoreTypeFood = "food"
)

// ParseDepartment validates a department path token against the fixed
// allow-list. Anything else is a caller error, not a database lookup.
func ParseDepartment(token string) (Department, error) {
	switch Department(token) {
	case DepartmentGiftShop, DepartmentFoodAndDrinks, DepartmentMaintenance:
		return Department(token), nil
	default:
		return "", fmt.Errorf("invalid department %q", token)
	}
}

// StoreType returns the store.type value for a store department. The second
// return is false for maintenance, which does not map to any store type.
func (d Department) StoreType() (string, bool) {
	switch d {
	case DepartmentGiftShop:
		return StoreTypeGift, true
	case DepartmentFoodAndDrinks:
		return StoreTypeFood, true
	default:
		return "", false
	}
}

// IsMaintenance reports whether this is the maintenance department.
func (d Department) IsMaintenance() bool {
	return d == DepartmentMaintenance
}

// DepartmentForJobTitle derives a manager's department from their job title.
// Titles mentioning gift map to the gift shop, food or drink to food & drinks,
// maintenance to maintenance. Unrecognized titles default to the gift shop.
func DepartmentForJobTitle(title string) Department {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "gift"):
		return DepartmentGiftShop
	case strings.Contains(t, "food"), strings.Contains(t, "drink"):
		return DepartmentFoodAndDrinks
	case strings.Contains(t, "maintenance"):
		return DepartmentMaintenance
	default:
		return DepartmentGiftShop
	}
}
