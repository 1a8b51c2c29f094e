package payroll

import "testing"

func TestComputeExemptBracket(t *testing.T) {
	result := Compute(1000000, Rates{AFPCommission: 0.0058, UTMValue: 65000, UFValue: 37000})

	if result.AFP != 105800 {
		t.Fatalf("expected AFP 105800, got %v", result.AFP)
	}
	if result.Health != 70000 {
		t.Fatalf("expected health 70000, got %v", result.Health)
	}
	if result.Unemployment != 6000 {
		t.Fatalf("expected unemployment 6000, got %v", result.Unemployment)
	}
	if result.Tax != 0 {
		t.Fatalf("expected no tax under 13.5 UTM, got %v", result.Tax)
	}
	if result.Net != 818200 {
		t.Fatalf("expected net 818200, got %v", result.Net)
	}
}

func TestComputeMiddleBracket(t *testing.T) {
	result := Compute(3000000, Rates{AFPCommission: 0.0058, UTMValue: 65000, UFValue: 37000})

	// taxable base 2454600 = 37.76 UTM -> 8% bracket with 1.74 UTM rebate
	if result.TaxableBase != 2454600 {
		t.Fatalf("expected taxable base 2454600, got %v", result.TaxableBase)
	}
	if result.Tax != 83268 {
		t.Fatalf("expected tax 83268, got %v", result.Tax)
	}
	if result.Net != 2371332 {
		t.Fatalf("expected net 2371332, got %v", result.Net)
	}
}

func TestComputeAppliesTaxableCap(t *testing.T) {
	result := Compute(5000000, Rates{AFPCommission: 0.0058, UTMValue: 65000, UFValue: 37000})

	// contributions computed on 84.3 UF = 3119100, not on the full gross
	if result.AFP != 330001 {
		t.Fatalf("expected AFP 330001, got %v", result.AFP)
	}
	if result.Health != 218337 {
		t.Fatalf("expected health 218337, got %v", result.Health)
	}
	if result.Unemployment != 18715 {
		t.Fatalf("expected unemployment 18715, got %v", result.Unemployment)
	}
	if result.Tax != 306598 {
		t.Fatalf("expected tax 306598, got %v", result.Tax)
	}
	if result.Net != 4126350 {
		t.Fatalf("expected net 4126350, got %v", result.Net)
	}
}

func TestComputeMinimumHealthRate(t *testing.T) {
	// A plan below the statutory floor is raised to 7%.
	result := Compute(1000000, Rates{AFPCommission: 0.0058, HealthRate: 0.05, UTMValue: 65000})
	if result.Health != 70000 {
		t.Fatalf("expected health floor 70000, got %v", result.Health)
	}
}

func TestComputeWithoutUTM(t *testing.T) {
	result := Compute(3000000, Rates{AFPCommission: 0.0058})
	if result.Tax != 0 {
		t.Fatalf("expected no withholding without a UTM value, got %v", result.Tax)
	}
}
