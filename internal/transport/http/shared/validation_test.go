package shared

import (
	"testing"
	"time"
)

func TestValidatorCollectsAndSortsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("nombre", "", "name is required")
	v.Enum("causal", "abandono", []string{"renuncia", "mutuo_acuerdo"}, "unknown causal")
	v.Add("amount", "must not be negative")

	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(issues))
	}
	if issues[0].Field != "amount" || issues[1].Field != "causal" || issues[2].Field != "nombre" {
		t.Fatalf("issues not sorted by field: %+v", issues)
	}
}

func TestValidatorEnumIgnoresEmptyAndCase(t *testing.T) {
	v := NewValidator()
	v.Enum("causal", "", []string{"renuncia"}, "unknown causal")
	v.Enum("causal", "RENUNCIA", []string{"renuncia"}, "unknown causal")
	if v.HasIssues() {
		t.Fatalf("expected no issues, got %+v", v.Issues())
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	parsed, ok := v.Date("lastWorkDay", "2024-07-01")
	if !ok || !parsed.Equal(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected parsed date, got %v ok=%v", parsed, ok)
	}

	if _, ok := v.Date("lastWorkDay", "01/07/2024"); ok {
		t.Fatal("expected rejection of non ISO date")
	}
	if !v.HasIssues() {
		t.Fatal("expected issue for bad date")
	}
}

func TestValidatorRUT(t *testing.T) {
	v := NewValidator()
	normalized, ok := v.RUT("rut", "12.345.678-5")
	if !ok || normalized != "12345678-5" {
		t.Fatalf("expected normalized rut, got %q ok=%v", normalized, ok)
	}

	if _, ok := v.RUT("rut", "12345678-6"); ok {
		t.Fatal("expected rejection of bad check digit")
	}
	if !v.HasIssues() {
		t.Fatal("expected issue for bad rut")
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	start := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	v.DateOrder("from", start, "to", end)
	if len(v.Issues()) != 2 {
		t.Fatalf("expected two ordering issues, got %+v", v.Issues())
	}
}
