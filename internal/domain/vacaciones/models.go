package vacaciones

import "time"

type Balance struct {
	RUT           string    `json:"rut"`
	Name          string    `json:"name"`
	DaysAvailable float64   `json:"daysAvailable"`
	AccrualCutoff time.Time `json:"accrualCutoff"`
}
