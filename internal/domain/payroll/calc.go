package payroll

import "github.com/shopspring/decimal"

// Compute derives the net salary from a gross monthly wage: pension (AFP),
// health and unemployment contributions on the capped taxable base, then the
// second-category income tax on what remains. Intermediate math is exact
// decimal arithmetic; amounts are rounded to whole pesos only in the result.
func Compute(gross float64, rates Rates) Result {
	grossD := decimal.NewFromFloat(gross)

	taxable := grossD
	if rates.UFValue > 0 {
		cap := decimal.NewFromFloat(TaxableCapUF).Mul(decimal.NewFromFloat(rates.UFValue))
		if taxable.GreaterThan(cap) {
			taxable = cap
		}
	}

	healthRate := rates.HealthRate
	if healthRate < HealthMinRate {
		healthRate = HealthMinRate
	}

	afp := taxable.Mul(decimal.NewFromFloat(AFPBaseRate + rates.AFPCommission))
	health := taxable.Mul(decimal.NewFromFloat(healthRate))
	unemployment := taxable.Mul(decimal.NewFromFloat(UnemploymentRate))

	taxBase := grossD.Sub(afp).Sub(health).Sub(unemployment)
	tax := incomeTax(taxBase, rates.UTMValue)

	net := grossD.Sub(afp).Sub(health).Sub(unemployment).Sub(tax)

	return Result{
		Gross:        round(grossD),
		TaxableBase:  round(taxBase),
		AFP:          round(afp),
		Health:       round(health),
		Unemployment: round(unemployment),
		Tax:          round(tax),
		Net:          round(net),
	}
}

// incomeTax applies the monthly UTM bracket table: base times the bracket
// factor minus the bracket rebate. Without a UTM value no tax is withheld.
func incomeTax(base decimal.Decimal, utmValue float64) decimal.Decimal {
	if utmValue <= 0 || base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	utm := decimal.NewFromFloat(utmValue)
	baseUTM := base.Div(utm)

	for _, b := range taxBrackets {
		from := decimal.NewFromFloat(b.FromUTM)
		if baseUTM.LessThan(from) {
			continue
		}
		if b.ToUTM > 0 && baseUTM.GreaterThanOrEqual(decimal.NewFromFloat(b.ToUTM)) {
			continue
		}
		tax := base.Mul(decimal.NewFromFloat(b.Factor)).Sub(decimal.NewFromFloat(b.RebateUTM).Mul(utm))
		if tax.IsNegative() {
			return decimal.Zero
		}
		return tax
	}
	return decimal.Zero
}

func round(d decimal.Decimal) float64 {
	value, _ := d.Round(0).Float64()
	return value
}
