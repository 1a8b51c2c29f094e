package payroll

const (
	// Worker-side statutory rates.
	AFPBaseRate      = 0.10
	HealthMinRate    = 0.07
	UnemploymentRate = 0.006

	// Monthly taxable cap, in UF.
	TaxableCapUF = 84.3
)

// taxBracket is one tier of the impuesto unico de segunda categoria. Bounds
// and rebate are expressed in UTM.
type taxBracket struct {
	FromUTM   float64
	ToUTM     float64 // 0 means unbounded
	Factor    float64
	RebateUTM float64
}

var taxBrackets = []taxBracket{
	{0, 13.5, 0, 0},
	{13.5, 30, 0.04, 0.54},
	{30, 50, 0.08, 1.74},
	{50, 70, 0.135, 4.49},
	{70, 90, 0.23, 11.14},
	{90, 120, 0.304, 17.80},
	{120, 310, 0.35, 23.32},
	{310, 0, 0.40, 38.82},
}
