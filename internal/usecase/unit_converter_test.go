package usecase

import "testing"

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"g", "g"},
		{"gram", "g"},
		{"grams", "g"},
		{"gramm", "g"},
		{"gramm.", "g"},
		{"kg", "kg"},
		{"kilogram", "kg"},
		{"kilograms", "kg"},
		{"kg.", "kg"},
		{"l", "l"},
		{"liter", "l"},
		{"litre", "l"},
		{"liters", "l"},
		{"litres", "l"},
		{"l.", "l"},
		{"ml", "ml"},
		{"milliliter", "ml"},
		{"millilitre", "ml"},
		{"milliliters", "ml"},
		{"millilitres", "ml"},
		{"ml.", "ml"},
		{"piece", "piece"},
		{"pieces", "piece"},
		{"stk", "piece"},
		{"pcs", "piece"},
		{"stück", "piece"},
		// case and whitespace handling
		{"KG", "kg"},
		{"  Liter ", "l"},
		{"Stück", "piece"},
		// unknown tokens pass through lower-cased and trimmed
		{"xyz", "xyz"},
		{" Bund ", "bund"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeUnit(tt.in); got != tt.want {
				t.Errorf("NormalizeUnit(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToBaseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		qty      float64
		unit     string
		wantQty  float64
		wantUnit string
	}{
		{"kilograms scale to grams", 2.5, "kg", 2500, "g"},
		{"grams pass through", 250, "g", 250, "g"},
		{"liters scale to milliliters", 1.5, "l", 1500, "ml"},
		{"milliliters pass through", 330, "ml", 330, "ml"},
		{"pieces pass through", 6, "pcs", 6, "piece"},
		{"german plural maps to piece", 3, "Stück", 3, "piece"},
		{"unknown unit passes through unscaled", 4, "Bund", 4, "bund"},
		{"alias spelling scales", 1, "Kilograms", 1000, "g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotQty, gotUnit := ToBaseQuantity(tt.qty, tt.unit)
			if gotQty != tt.wantQty || gotUnit != tt.wantUnit {
				t.Errorf("ToBaseQuantity(%v, %q) = (%v, %q), want (%v, %q)",
					tt.qty, tt.unit, gotQty, gotUnit, tt.wantQty, tt.wantUnit)
			}
		})
	}
}

func TestToBaseQuantityEquivalence(t *testing.T) {
	// 2 kg and 2000 g must land on the same base pair
	kgQty, kgUnit := ToBaseQuantity(2, "kg")
	gQty, gUnit := ToBaseQuantity(2000, "g")

	if kgQty != gQty || kgUnit != gUnit {
		t.Errorf("2 kg = (%v, %q), 2000 g = (%v, %q); want equal", kgQty, kgUnit, gQty, gUnit)
	}
}
