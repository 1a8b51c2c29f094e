package finiquito

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func baseInput() SettlementInput {
	return SettlementInput{
		Employee: Employee{
			RUT:        "12.345.678-5",
			Name:       "Maria Soto",
			Position:   "Analista",
			HireDate:   date(2020, time.January, 1),
			BaseSalary: 1000000,
		},
		Params: Parameters{
			Causal:      CausalNecesidadesEmpresa,
			LastWorkDay: date(2024, time.July, 1),
			NoticeGiven: false,
		},
		Vacation:    VacationState{DaysAvailable: 10},
		BaseSalary:  1000000,
		MinimumWage: 500000,
		UFValue:     37000,
	}
}

func TestRecomputeEndToEnd(t *testing.T) {
	result := Recompute(baseInput())

	if result.YearsOfService < 4.49 || result.YearsOfService > 4.51 {
		t.Fatalf("expected roughly 4.5 years of service, got %v", result.YearsOfService)
	}
	if result.IndemnityYears != 5 {
		t.Fatalf("expected 5 indemnity years, got %v", result.IndemnityYears)
	}

	// gratification capped at 4.75/12 of the minimum wage
	if result.Gratification != 197917 {
		t.Fatalf("expected gratification 197917, got %v", result.Gratification)
	}
	if result.TotalHaberes != 1197917 {
		t.Fatalf("expected total haberes 1197917, got %v", result.TotalHaberes)
	}
	if result.NoticeIndemnity != 1197917 {
		t.Fatalf("expected notice indemnity 1197917, got %v", result.NoticeIndemnity)
	}
	if result.YearsIndemnity != 5989583 {
		t.Fatalf("expected years indemnity 5989583, got %v", result.YearsIndemnity)
	}

	// 10 pending days starting Tuesday 2024-07-02 span 14 calendar days.
	if result.VacationSpanDays != 14 {
		t.Fatalf("expected span 14, got %v", result.VacationSpanDays)
	}
	if result.VacationIndemnity != 466667 {
		t.Fatalf("expected vacation indemnity 466667, got %v", result.VacationIndemnity)
	}

	if result.Net != 7654167 {
		t.Fatalf("expected net 7654167, got %v", result.Net)
	}
}

func TestRecomputeRenuncia(t *testing.T) {
	in := baseInput()
	in.Params.Causal = CausalRenuncia
	result := Recompute(in)

	if result.NoticeIndemnity != 0 {
		t.Fatalf("expected no notice indemnity, got %v", result.NoticeIndemnity)
	}
	if result.YearsIndemnity != 0 {
		t.Fatalf("expected no years indemnity, got %v", result.YearsIndemnity)
	}
	if result.VacationIndemnity != 466667 {
		t.Fatalf("expected vacation indemnity 466667, got %v", result.VacationIndemnity)
	}
}

func TestRecomputeNoticeGiven(t *testing.T) {
	in := baseInput()
	in.Params.NoticeGiven = true
	result := Recompute(in)
	if result.NoticeIndemnity != 0 {
		t.Fatalf("expected no notice indemnity when notice was given, got %v", result.NoticeIndemnity)
	}
	if result.YearsIndemnity == 0 {
		t.Fatal("expected years indemnity to remain")
	}
}

func TestRecomputeUnderOneYear(t *testing.T) {
	in := baseInput()
	in.Employee.HireDate = date(2024, time.January, 2)
	result := Recompute(in)
	if result.YearsIndemnity != 0 {
		t.Fatalf("expected no years indemnity under one year, got %v", result.YearsIndemnity)
	}
}

func TestRecomputeNoTerminationDate(t *testing.T) {
	in := baseInput()
	in.Params.LastWorkDay = time.Time{}
	in.Employee.TenureYears = 3.2
	result := Recompute(in)

	if result.VacationIndemnity != 0 {
		t.Fatalf("expected vacation indemnity 0 without a date, got %v", result.VacationIndemnity)
	}
	if result.YearsOfService != 3.2 {
		t.Fatalf("expected provisional tenure 3.2, got %v", result.YearsOfService)
	}
}

func TestRecomputeDeductions(t *testing.T) {
	in := baseInput()
	in.Deductions = []DeductionItem{
		{Concepto: DeductionPrestamoInterno, Amount: 5, Installments: 12},
		{Concepto: DeductionRetencionJudicial, Amount: 100000, Installments: 1},
	}
	result := Recompute(in)

	if result.Deductions[0].Total != 2220000 {
		t.Fatalf("expected loan total 2220000, got %v", result.Deductions[0].Total)
	}
	if result.TotalDeductions != 2320000 {
		t.Fatalf("expected total deductions 2320000, got %v", result.TotalDeductions)
	}
	if result.Net != 7654167-2320000 {
		t.Fatalf("expected net %v, got %v", 7654167-2320000, result.Net)
	}
}

func TestRecomputeBonusFeedsHaberes(t *testing.T) {
	in := baseInput()
	in.Vacation.DaysAvailable = 0
	in.MinimumWage = 10000000 // keep the gratification cap out of the way
	in.Bonuses = []BonusItem{
		fetchedItem("comision", 100000, 0),
		fetchedItem("comision", 200000, 1),
	}
	result := Recompute(in)

	if result.BonusAverage != 150000 {
		t.Fatalf("expected bonus average 150000, got %v", result.BonusAverage)
	}
	// haberes = 1000000 + 150000 + 0.25*(1150000)
	if result.TotalHaberes != 1437500 {
		t.Fatalf("expected total haberes 1437500, got %v", result.TotalHaberes)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	in := baseInput()
	in.Deductions = []DeductionItem{{Concepto: DeductionPrestamoInterno, Amount: 5, Installments: 12, Detail: "credito casa"}}
	session := Session{
		RUT:       in.Employee.RUT,
		Input:     in,
		Result:    Recompute(in),
		UpdatedAt: time.Date(2024, time.July, 2, 10, 30, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var restored Session
	if err := json.Unmarshal(payload, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(session, restored) {
		t.Fatalf("round trip mismatch:\nbefore: %+v\nafter:  %+v", session, restored)
	}
}

func TestValidCausal(t *testing.T) {
	for _, c := range Causales {
		if !ValidCausal(c) {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	if ValidCausal("despido_indirecto") {
		t.Fatal("expected unknown causal to be invalid")
	}
}
