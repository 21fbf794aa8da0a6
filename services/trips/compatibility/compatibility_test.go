package compatibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name         string
		required     string
		preferred    []string
		compatible   bool
		category     Category
		categoryMiss bool
	}{
		{
			name:       "no requirement",
			required:   "",
			preferred:  nil,
			compatible: true,
		},
		{
			name:       "exact match",
			required:   "Flatbed Truck",
			preferred:  []string{"Flatbed Truck"},
			compatible: true,
			category:   CategoryFlatbed,
		},
		{
			name:       "short code matches catalog name",
			required:   "Small Truck (up to 3.5t)",
			preferred:  []string{"small_truck"},
			compatible: true,
			category:   CategorySmallTruck,
		},
		{
			name:       "catalog name matches short code",
			required:   "dump_truck",
			preferred:  []string{"Dump Truck"},
			compatible: true,
			category:   CategoryDumpTruck,
		},
		{
			name:       "different category",
			required:   "Crane Truck",
			preferred:  []string{"small_truck", "flatbed"},
			compatible: false,
			category:   CategoryCraneTruck,
		},
		{
			name:       "empty preferences",
			required:   "Large Truck",
			preferred:  []string{},
			compatible: false,
			category:   CategoryLargeTruck,
		},
		{
			name:         "unmapped type reports a category miss",
			required:     "Hovercraft",
			preferred:    []string{"small_truck"},
			compatible:   false,
			categoryMiss: true,
		},
		{
			name:       "unmapped type still matches exactly",
			required:   "Hovercraft",
			preferred:  []string{"Hovercraft"},
			compatible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.required, tt.preferred)

			assert.Equal(t, tt.compatible, got.Compatible)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.categoryMiss, got.CategoryMiss)
			assert.Equal(t, tt.compatible, IsCompatible(tt.required, tt.preferred))
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, CategoryMediumTruck, Resolve("  MEDIUM_TRUCK "))
	assert.Equal(t, CategoryUnknown, Resolve("bicycle"))
	assert.Equal(t, "Concrete Mixer", Resolve("mixer").String())
	assert.Equal(t, "unknown", Category(99).String())
}
