package consumption

import (
	"strings"
	"testing"

	"printagent/internal/config"
	"printagent/pkg/models"

	"github.com/stretchr/testify/assert"
)

var testRules = config.ConsumptionRules{
	InkColorPagesPerUnit: 500,
	InkBlackPagesPerUnit: 1000,
	BindingUnitsPerJob:   1,
}

func findEntry(t *testing.T, entries []models.ConsumptionEntry, name string) models.ConsumptionEntry {
	t.Helper()
	for _, entry := range entries {
		if entry.ResourceName == name {
			return entry
		}
	}
	t.Fatalf("expected entry for %q, got %v", name, entries)
	return models.ConsumptionEntry{}
}

func TestComputeNonPrintItem(t *testing.T) {
	item := models.LineItem{Type: "product", PageCount: 10}

	entries := Compute(item, "order-1", testRules)

	assert.Empty(t, entries)
}

func TestComputeSingleSidedMono(t *testing.T) {
	item := models.LineItem{
		Type:      models.ItemTypePrint,
		PageCount: 10,
		PrintConfig: &models.PrintConfig{
			Copies:    2,
			Sides:     models.SidesSingle,
			ColorMode: models.ColorModeBW,
		},
	}

	entries := Compute(item, "order-a", testRules)

	assert.Len(t, entries, 2)
	paper := findEntry(t, entries, ResourceA4Paper)
	assert.Equal(t, 20, paper.Amount)
	ink := findEntry(t, entries, ResourceBlackInk)
	assert.Equal(t, 1, ink.Amount) // ceil(20/1000)
}

func TestComputeDoubleSidedColorA3(t *testing.T) {
	item := models.LineItem{
		Type:      models.ItemTypePrint,
		PageCount: 100,
		PrintConfig: &models.PrintConfig{
			Copies:    1,
			Sides:     models.SidesDouble,
			ColorMode: models.ColorModeColor,
			PaperSize: models.PaperSizeA3,
		},
	}

	entries := Compute(item, "order-b", testRules)

	paper := findEntry(t, entries, ResourceA3Paper)
	assert.Equal(t, 50, paper.Amount)

	for _, channel := range []string{"Cyan", "Magenta", "Yellow"} {
		ink := findEntry(t, entries, "Color Ink ("+channel+")")
		assert.Equal(t, 1, ink.Amount) // ceil(100/500)
	}
	assert.Len(t, entries, 4)
}

func TestComputePaperSizeNormalized(t *testing.T) {
	tests := []struct {
		name      string
		paperSize string
		expected  string
	}{
		{name: "uppercase A3", paperSize: "A3", expected: ResourceA3Paper},
		{name: "padded a3", paperSize: " a3 ", expected: ResourceA3Paper},
		{name: "uppercase A4", paperSize: "A4", expected: ResourceA4Paper},
		{name: "blank falls back to a4", paperSize: "  ", expected: ResourceA4Paper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := models.LineItem{
				Type:      models.ItemTypePrint,
				PageCount: 10,
				PrintConfig: &models.PrintConfig{
					Copies:    1,
					PaperSize: tt.paperSize,
					ColorMode: models.ColorModeBW,
				},
			}

			entries := Compute(item, "order-p", testRules)

			paper := findEntry(t, entries, tt.expected)
			assert.Equal(t, 10, paper.Amount)
		})
	}
}

func TestComputeBinding(t *testing.T) {
	item := models.LineItem{
		Type:      models.ItemTypePrint,
		PageCount: 50,
		PrintConfig: &models.PrintConfig{
			Copies:  3,
			Binding: true,
		},
	}

	entries := Compute(item, "order-c", testRules)

	binding := findEntry(t, entries, ResourceBindingCoils)
	assert.Equal(t, 3, binding.Amount)
}

func TestComputeZeroPages(t *testing.T) {
	item := models.LineItem{
		Type:      models.ItemTypePrint,
		PageCount: 0,
		PrintConfig: &models.PrintConfig{
			Copies:    5,
			ColorMode: models.ColorModeBW,
		},
	}

	entries := Compute(item, "order-z", testRules)

	// The paper entry must still be present, with a zero amount.
	paper := findEntry(t, entries, ResourceA4Paper)
	assert.Equal(t, 0, paper.Amount)

	// Zero impressions never round up to a cartridge.
	ink := findEntry(t, entries, ResourceBlackInk)
	assert.Equal(t, 0, ink.Amount)
}

func TestComputeNilPrintConfigDefaults(t *testing.T) {
	item := models.LineItem{Type: models.ItemTypePrint, PageCount: 3}

	entries := Compute(item, "order-d", testRules)

	paper := findEntry(t, entries, ResourceA4Paper)
	assert.Equal(t, 3, paper.Amount)
	ink := findEntry(t, entries, ResourceBlackInk)
	assert.Equal(t, 1, ink.Amount)
}

func TestComputeNotesCarryOrderID(t *testing.T) {
	item := models.LineItem{
		Type:      models.ItemTypePrint,
		PageCount: 12,
		PrintConfig: &models.PrintConfig{
			Copies:    2,
			ColorMode: models.ColorModeColor,
			Binding:   true,
		},
	}

	entries := Compute(item, "order-note-7", testRules)

	for _, entry := range entries {
		assert.True(t, strings.Contains(entry.Note, "order-note-7"),
			"note %q should reference the order id", entry.Note)
	}
}

func TestSheetCount(t *testing.T) {
	tests := []struct {
		name     string
		pages    int
		copies   int
		sides    string
		expected int
	}{
		{name: "single sided", pages: 10, copies: 2, sides: models.SidesSingle, expected: 20},
		{name: "double sided even", pages: 10, copies: 2, sides: models.SidesDouble, expected: 10},
		{name: "double sided odd", pages: 7, copies: 1, sides: models.SidesDouble, expected: 4},
		{name: "zero pages", pages: 0, copies: 3, sides: models.SidesDouble, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sheetCount(tt.pages, tt.copies, tt.sides))
		})
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		name     string
		a        int
		b        int
		expected int
	}{
		{name: "exact", a: 1000, b: 1000, expected: 1},
		{name: "rounds up", a: 1001, b: 1000, expected: 2},
		{name: "zero input stays zero", a: 0, b: 500, expected: 0},
		{name: "below one unit", a: 1, b: 500, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ceilDiv(tt.a, tt.b))
		})
	}
}
