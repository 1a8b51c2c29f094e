package auth

// Portal modules. Access is granted per role from the administration panel.
const (
	ModuleDashboard  = "dashboard"
	ModuleLicencias  = "licencias"
	ModuleVacaciones = "vacaciones"
	ModuleAsistencia = "asistencia"
	ModuleFiniquitos = "finiquitos"
	ModulePayroll    = "payroll"
	ModuleAdmin      = "admin"
)

var DefaultModules = []string{
	ModuleDashboard,
	ModuleLicencias,
	ModuleVacaciones,
	ModuleAsistencia,
	ModuleFiniquitos,
	ModulePayroll,
	ModuleAdmin,
}

const (
	RoleAdmin    = "admin"
	RoleRRHH     = "rrhh"
	RoleGerencia = "gerencia"
)

// RoleModules is the seed assignment; administrators adjust it at runtime.
var RoleModules = map[string][]string{
	RoleAdmin: DefaultModules,
	RoleRRHH: {
		ModuleDashboard,
		ModuleLicencias,
		ModuleVacaciones,
		ModuleAsistencia,
		ModuleFiniquitos,
		ModulePayroll,
	},
	RoleGerencia: {
		ModuleDashboard,
		ModuleVacaciones,
		ModuleAsistencia,
	},
}
