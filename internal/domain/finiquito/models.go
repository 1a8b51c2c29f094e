package finiquito

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

// Parameters is the operator input that drives the calculation.
type Parameters struct {
	Causal      string    `json:"causal"`
	LastWorkDay time.Time `json:"lastWorkDay"`
	NoticeGiven bool      `json:"noticeGiven"`
	Signer      string    `json:"signer"`
}

// VacationState carries the pending vacation-day stock. Once the operator
// edits the value directly the projection refetch is suppressed.
type VacationState struct {
	DaysAvailable float64 `json:"daysAvailable"`
	Overridden    bool    `json:"overridden"`
}

type BonusItem struct {
	Concepto string  `json:"concepto"`
	Amount   float64 `json:"amount"`
	Active   bool    `json:"active"`
	Source   string  `json:"source"`
	Index    int     `json:"index"`
}

type DeductionItem struct {
	Concepto     string  `json:"concepto"`
	Amount       float64 `json:"amount"`
	Installments int     `json:"installments"`
	Detail       string  `json:"detail,omitempty"`
}

// SettlementInput is the complete immutable input of one calculation pass.
// Every operator edit produces a new input value and a fresh Recompute call.
type SettlementInput struct {
	Employee         Employee        `json:"employee"`
	Params           Parameters      `json:"params"`
	Vacation         VacationState   `json:"vacation"`
	BaseSalary       float64         `json:"baseSalary"`
	Mobility         float64         `json:"mobility"`
	OutstandingWages float64         `json:"outstandingWages"`
	MinimumWage      float64         `json:"minimumWage"`
	UFValue          float64         `json:"ufValue"`
	Bonuses          []BonusItem     `json:"bonuses"`
	Deductions       []DeductionItem `json:"deductions"`
}

type DeductionLine struct {
	Concepto     string  `json:"concepto"`
	Detail       string  `json:"detail,omitempty"`
	Amount       float64 `json:"amount"`
	Installments int     `json:"installments"`
	Total        float64 `json:"total"`
}

// SettlementResult is the itemized settlement document. Monetary fields are
// rounded to whole pesos here and nowhere earlier.
type SettlementResult struct {
	RUT string `json:"rut"`

	BaseSalary        float64 `json:"baseSalary"`
	BonusAverage      float64 `json:"bonusAverage"`
	Mobility          float64 `json:"mobility"`
	Gratification     float64 `json:"gratification"`
	TotalHaberes      float64 `json:"totalHaberes"`
	NoticeIndemnity   float64 `json:"noticeIndemnity"`
	YearsIndemnity    float64 `json:"yearsIndemnity"`
	VacationIndemnity float64 `json:"vacationIndemnity"`
	OutstandingWages  float64 `json:"outstandingWages"`

	Deductions      []DeductionLine `json:"deductions"`
	TotalDeductions float64         `json:"totalDeductions"`

	YearsOfService   float64 `json:"yearsOfService"`
	IndemnityYears   float64 `json:"indemnityYears"`
	VacationSpanDays float64 `json:"vacationSpanDays"`

	Net float64 `json:"net"`
}

// Session is the persisted snapshot of one calculation, keyed by employee RUT.
type Session struct {
	RUT       string           `json:"rut"`
	Input     SettlementInput  `json:"input"`
	Result    SettlementResult `json:"result"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
