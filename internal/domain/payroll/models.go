package payroll

// Rates parameterizes one net-salary calculation. AFPCommission is the fund
// commission on top of the 10% base; HealthRate defaults to the statutory 7%.
type Rates struct {
	AFPCommission float64 `json:"afpCommission"`
	HealthRate    float64 `json:"healthRate"`
	UFValue       float64 `json:"ufValue"`
	UTMValue      float64 `json:"utmValue"`
}

// Result is the itemized gross-to-net breakdown, every amount in whole pesos.
type Result struct {
	Gross        float64 `json:"gross"`
	TaxableBase  float64 `json:"taxableBase"`
	AFP          float64 `json:"afp"`
	Health       float64 `json:"health"`
	Unemployment float64 `json:"unemployment"`
	Tax          float64 `json:"tax"`
	Net          float64 `json:"net"`
}
