package empleados

import "time"

type Employee struct {
	RUT         string    `json:"rut"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	HireDate    time.Time `json:"hireDate"`
	Company     string    `json:"company"`
	BaseSalary  float64   `json:"baseSalary"`
	TenureYears float64   `json:"tenureYears"`
}

// IncomeItem is one historical payroll line, tagged by its income type
// (fijo, variable or ocasional) and grouping concept.
type IncomeItem struct {
	RUT        string    `json:"rut"`
	IncomeType string    `json:"incomeType"`
	Concepto   string    `json:"concepto"`
	Amount     float64   `json:"amount"`
	PaidOn     time.Time `json:"paidOn"`
}

const (
	IncomeTypeFijo      = "fijo"
	IncomeTypeVariable  = "variable"
	IncomeTypeOcasional = "ocasional"
)
