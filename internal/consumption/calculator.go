package consumption

import (
	"fmt"
	"strings"

	"printagent/internal/config"
	"printagent/pkg/models"
)

const (
	ResourceA4Paper      = "A4 Paper (White)"
	ResourceA3Paper      = "A3 Paper"
	ResourceBlackInk     = "Black Ink"
	ResourceBindingCoils = "Spiral Binding Coils"
)

// Each color channel is a separate consumable reservoir and is consumed
// equally per impression.
var colorChannels = []string{"Cyan", "Magenta", "Yellow"}

// Compute turns one order line item into the list of inventory resources it
// consumes. Non-print items consume nothing.
func Compute(item models.LineItem, orderID string, rules config.ConsumptionRules) []models.ConsumptionEntry {
	if item.Type != models.ItemTypePrint {
		return nil
	}

	pages := item.PageCount
	copies := 1
	paperSize := models.PaperSizeA4
	colorMode := models.ColorModeBW
	sides := models.SidesSingle
	binding := false
	if item.PrintConfig != nil {
		if item.PrintConfig.Copies > 0 {
			copies = item.PrintConfig.Copies
		}
		// Paper size comes from a free-form order payload; "A3" and "a3"
		// must land in the same bucket.
		if normalized := strings.ToLower(strings.TrimSpace(item.PrintConfig.PaperSize)); normalized != "" {
			paperSize = normalized
		}
		if item.PrintConfig.ColorMode != "" {
			colorMode = item.PrintConfig.ColorMode
		}
		if item.PrintConfig.Sides != "" {
			sides = item.PrintConfig.Sides
		}
		binding = item.PrintConfig.Binding
	}

	var entries []models.ConsumptionEntry

	// Paper. A zero-page job still emits its zero-amount paper entry so the
	// expected resource keys are always present downstream.
	sheets := sheetCount(pages, copies, sides)
	paperName := ResourceA4Paper
	if paperSize == models.PaperSizeA3 {
		paperName = ResourceA3Paper
	}
	entries = append(entries, models.ConsumptionEntry{
		ResourceName: paperName,
		Amount:       sheets,
		Note:         fmt.Sprintf("Order %s: %d %s sheets (%dpg x %dcp, %s-sided)", orderID, sheets, paperSize, pages, copies, sides),
	})

	// Ink. Impressions drive usage; zero impressions must yield zero
	// cartridges, never one.
	impressions := pages * copies
	if colorMode == models.ColorModeColor {
		cartridges := ceilDiv(impressions, rules.InkColorPagesPerUnit)
		for _, channel := range colorChannels {
			entries = append(entries, models.ConsumptionEntry{
				ResourceName: fmt.Sprintf("Color Ink (%s)", channel),
				Amount:       cartridges,
				Note:         fmt.Sprintf("Order %s: ~%d color cartridge(s) [%s] for %d impressions", orderID, cartridges, channel, impressions),
			})
		}
	} else {
		cartridges := ceilDiv(impressions, rules.InkBlackPagesPerUnit)
		entries = append(entries, models.ConsumptionEntry{
			ResourceName: ResourceBlackInk,
			Amount:       cartridges,
			Note:         fmt.Sprintf("Order %s: ~%d black cartridge(s) for %d impressions", orderID, cartridges, impressions),
		})
	}

	if binding {
		entries = append(entries, models.ConsumptionEntry{
			ResourceName: ResourceBindingCoils,
			Amount:       copies * rules.BindingUnitsPerJob,
			Note:         fmt.Sprintf("Order %s: binding for %d cop(ies)", orderID, copies),
		})
	}

	return entries
}

// sheetCount is the number of physical sheets a job needs, halved (rounded
// up) for duplex printing.
func sheetCount(pages, copies int, sides string) int {
	total := pages * copies
	if sides == models.SidesDouble {
		return ceilDiv(total, 2)
	}
	return total
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
