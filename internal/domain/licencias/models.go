package licencias

import "time"

// Licencia is one medical-leave record, shown on the dashboards for context.
// It plays no part in settlement math.
type Licencia struct {
	ID        string    `json:"id"`
	RUT       string    `json:"rut"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Days      int       `json:"days"`
	Folio     string    `json:"folio,omitempty"`
}
