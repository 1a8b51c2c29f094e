package finiquito

import "math"

type entitlement struct {
	Vacation bool
	Years    bool
	Notice   bool
}

// causalEntitlement maps each legal termination ground to the indemnities it
// carries. Vacation payout applies to every causal; years-of-service and
// notice indemnities only to employer-driven or mutually agreed endings.
func causalEntitlement(causal string) entitlement {
	switch causal {
	case CausalNecesidadesEmpresa, CausalMutuoAcuerdo:
		return entitlement{Vacation: true, Years: true, Notice: true}
	case CausalNoConcurrencia, CausalRenuncia:
		return entitlement{Vacation: true}
	default:
		// No causal selected yet: only the vacation payout is previewed.
		return entitlement{Vacation: true}
	}
}

// Recompute derives the full itemized settlement from one immutable input.
// All arithmetic keeps full floating precision; rounding happens only on the
// values placed into the result.
func Recompute(in SettlementInput) SettlementResult {
	salary := in.BaseSalary
	bonusAvg := AverageBonus(in.Bonuses)

	gratification := math.Min((salary+bonusAvg)*gratificationRate, gratificationCapFactor*in.MinimumWage)
	totalHaberes := salary + bonusAvg + in.Mobility + gratification

	hasTermination := !in.Params.LastWorkDay.IsZero()

	years := in.Employee.TenureYears
	if hasTermination && !in.Employee.HireDate.IsZero() {
		years = YearsOfService(in.Employee.HireDate, in.Params.LastWorkDay)
	}
	indemnityYears := IndemnityYears(years)

	ent := causalEntitlement(in.Params.Causal)

	var span, vacationPay float64
	if hasTermination && ent.Vacation {
		span = VacationSpan(in.Params.LastWorkDay, in.Vacation.DaysAvailable)
		vacationPay = (salary + bonusAvg) / 30 * span
	}

	var yearsPay float64
	if ent.Years && years >= 1 {
		yearsPay = indemnityYears * totalHaberes
	}

	var noticePay float64
	if ent.Notice && !in.Params.NoticeGiven {
		noticePay = totalHaberes
	}

	lines := make([]DeductionLine, 0, len(in.Deductions))
	totalDeductions := 0.0
	for _, d := range in.Deductions {
		unit := d.Amount
		if d.Concepto == DeductionPrestamoInterno {
			// Loan balances are kept in UF; convert with the day's value
			// before applying the installment count.
			unit *= in.UFValue
		}
		total := unit * float64(d.Installments)
		totalDeductions += total
		lines = append(lines, DeductionLine{
			Concepto:     d.Concepto,
			Detail:       d.Detail,
			Amount:       d.Amount,
			Installments: d.Installments,
			Total:        math.Round(total),
		})
	}

	net := noticePay + yearsPay + vacationPay + in.OutstandingWages - totalDeductions

	return SettlementResult{
		RUT:               in.Employee.RUT,
		BaseSalary:        math.Round(salary),
		BonusAverage:      math.Round(bonusAvg),
		Mobility:          math.Round(in.Mobility),
		Gratification:     math.Round(gratification),
		TotalHaberes:      math.Round(totalHaberes),
		NoticeIndemnity:   math.Round(noticePay),
		YearsIndemnity:    math.Round(yearsPay),
		VacationIndemnity: math.Round(vacationPay),
		OutstandingWages:  math.Round(in.OutstandingWages),
		Deductions:        lines,
		TotalDeductions:   math.Round(totalDeductions),
		YearsOfService:    years,
		IndemnityYears:    indemnityYears,
		VacationSpanDays:  span,
		Net:               math.Round(net),
	}
}

// ValidCausal reports whether causal is one of the accepted grounds.
func ValidCausal(causal string) bool {
	for _, c := range Causales {
		if c == causal {
			return true
		}
	}
	return false
}
