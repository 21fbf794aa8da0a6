// Package compatibility decides whether a driver's preferred trucks can carry
// a trip that asks for a given truck type.
package compatibility

import "strings"

// Category is a canonical truck class. Catalog names and the short codes used
// by the driver app both resolve to one category.
type Category int

const (
	CategoryUnknown Category = iota
	CategorySmallTruck
	CategoryMediumTruck
	CategoryLargeTruck
	CategoryFlatbed
	CategoryDumpTruck
	CategoryCraneTruck
	CategoryConcreteMixer
)

var categoryNames = map[Category]string{
	CategoryUnknown:       "unknown",
	CategorySmallTruck:    "Small Truck",
	CategoryMediumTruck:   "Medium Truck",
	CategoryLargeTruck:    "Large Truck",
	CategoryFlatbed:       "Flatbed Truck",
	CategoryDumpTruck:     "Dump Truck",
	CategoryCraneTruck:    "Crane Truck",
	CategoryConcreteMixer: "Concrete Mixer",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// aliases lists every spelling of a category, canonical name included
var aliases = map[Category][]string{
	CategorySmallTruck:    {"Small Truck", "small_truck", "small", "Small Truck (up to 3.5t)", "pickup_truck"},
	CategoryMediumTruck:   {"Medium Truck", "medium_truck", "medium", "Medium Truck (3.5t - 7.5t)"},
	CategoryLargeTruck:    {"Large Truck", "large_truck", "large", "heavy_truck", "Large Truck (7.5t+)"},
	CategoryFlatbed:       {"Flatbed Truck", "flatbed_truck", "flatbed"},
	CategoryDumpTruck:     {"Dump Truck", "dump_truck", "dump", "tipper"},
	CategoryCraneTruck:    {"Crane Truck", "crane_truck", "crane"},
	CategoryConcreteMixer: {"Concrete Mixer", "concrete_mixer", "mixer"},
}

// byAlias maps a normalized spelling to its category
var byAlias = func() map[string]Category {
	m := make(map[string]Category)
	for cat, names := range aliases {
		for _, n := range names {
			m[normalize(n)] = cat
		}
	}
	return m
}()

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve returns the category a truck type name belongs to
func Resolve(name string) Category {
	if cat, ok := byAlias[normalize(name)]; ok {
		return cat
	}
	return CategoryUnknown
}

// Result is the outcome of a compatibility check
type Result struct {
	Compatible bool
	Category   Category
	// CategoryMiss is set when the required type is not in the alias table,
	// which usually means the catalog gained a type nobody mapped yet.
	CategoryMiss bool
}

// Check matches a required truck type against a driver's preferred types.
// No requirement is always compatible. An exact name match wins. Otherwise
// both sides are resolved to categories and compared.
func Check(required string, preferred []string) Result {
	if strings.TrimSpace(required) == "" {
		return Result{Compatible: true}
	}

	for _, p := range preferred {
		if p == required {
			return Result{Compatible: true, Category: Resolve(required)}
		}
	}

	cat := Resolve(required)
	if cat == CategoryUnknown {
		return Result{CategoryMiss: true}
	}

	for _, p := range preferred {
		if Resolve(p) == cat {
			return Result{Compatible: true, Category: cat}
		}
	}
	return Result{Category: cat}
}

// IsCompatible is Check reduced to its verdict
func IsCompatible(required string, preferred []string) bool {
	return Check(required, preferred).Compatible
}
