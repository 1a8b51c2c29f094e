package finiquito

const (
	CausalNecesidadesEmpresa = "necesidades_empresa"
	CausalMutuoAcuerdo       = "mutuo_acuerdo"
	CausalNoConcurrencia     = "no_concurrencia"
	CausalRenuncia           = "renuncia"

	BonusSourceFetched = "fetched"
	BonusSourceManual  = "manual"

	DeductionPrestamoInterno   = "prestamo_interno"
	DeductionRetencionJudicial = "retencion_judicial"

	// Fractional vacation days above this threshold spill the payout span
	// over an adjacent weekend.
	spilloverThreshold = 0.2

	daysPerYear = 365.25

	// Statutory gratification: a quarter of monthly remuneration, capped at
	// 4.75 minimum wages spread over twelve months.
	gratificationRate      = 0.25
	gratificationCapFactor = 4.75 / 12.0
)

// Causales lists the legal termination grounds the portal accepts.
var Causales = []string{
	CausalNecesidadesEmpresa,
	CausalMutuoAcuerdo,
	CausalNoConcurrencia,
	CausalRenuncia,
}
