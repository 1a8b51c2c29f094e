package asistencia

import "time"

type Record struct {
	ID       string    `json:"id"`
	RUT      string    `json:"rut"`
	Date     time.Time `json:"date"`
	CheckIn  string    `json:"checkIn,omitempty"`
	CheckOut string    `json:"checkOut,omitempty"`
	Status   string    `json:"status"`
}

const (
	StatusPresent  = "presente"
	StatusAbsent   = "ausente"
	StatusLicense  = "licencia"
	StatusVacation = "vacaciones"
)
