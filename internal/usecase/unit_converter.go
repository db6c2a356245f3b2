package usecase

import "strings"

// Canonical unit tags. Quantities are only comparable within the same base
// unit; unrecognized spellings pass through as their own base unit.
const (
	UnitGram       = "g"
	UnitKilogram   = "kg"
	UnitLiter      = "l"
	UnitMilliliter = "ml"
	UnitPiece      = "piece"
)

// unitAliases maps lower-cased, trimmed unit spellings to their canonical
// tag. German spellings are part of the dataset and are matched by plain
// string equality, no locale folding.
var unitAliases = map[string]string{
	"g": UnitGram, "gram": UnitGram, "grams": UnitGram, "gramm": UnitGram, "gramm.": UnitGram,
	"kg": UnitKilogram, "kilogram": UnitKilogram, "kilograms": UnitKilogram, "kg.": UnitKilogram,
	"l": UnitLiter, "liter": UnitLiter, "litre": UnitLiter, "liters": UnitLiter, "litres": UnitLiter, "l.": UnitLiter,
	"ml": UnitMilliliter, "milliliter": UnitMilliliter, "millilitre": UnitMilliliter, "milliliters": UnitMilliliter, "millilitres": UnitMilliliter, "ml.": UnitMilliliter,
	"piece": UnitPiece, "pieces": UnitPiece, "stk": UnitPiece, "pcs": UnitPiece, "stück": UnitPiece,
}

// NormalizeUnit lower-cases and trims a free-text unit spelling and maps it
// to its canonical tag. Unknown tokens pass through verbatim (lower-cased,
// trimmed) as their own unit class. Never fails.
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := unitAliases[u]; ok {
		return canonical
	}
	return u
}

// ToBaseQuantity converts a (quantity, unit) pair into the base quantity and
// base unit used for cross-offer comparison: kg scales x1000 to g, l scales
// x1000 to ml, g/ml/piece pass through, and unrecognized units pass through
// unscaled under their normalized token.
func ToBaseQuantity(quantity float64, unit string) (float64, string) {
	switch u := NormalizeUnit(unit); u {
	case UnitKilogram:
		return quantity * 1000, UnitGram
	case UnitLiter:
		return quantity * 1000, UnitMilliliter
	default:
		return quantity, u
	}
}
