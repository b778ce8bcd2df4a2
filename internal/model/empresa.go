package model

// Empresa is the business-entity tag that partitions machines, articles and
// cup counts. Only two values exist; anything else degrades to Telecom.
type Empresa string

const (
	EmpresaTelecom    Empresa = "Telecom"
	EmpresaPagoOnline Empresa = "Pago Online"
)

// ParseEmpresa reports whether s is one of the known empresas.
func ParseEmpresa(s string) (Empresa, bool) {
	switch Empresa(s) {
	case EmpresaTelecom, EmpresaPagoOnline:
		return Empresa(s), true
	}
	return "", false
}

// NormalizeEmpresa maps any unrecognized value to the Telecom default.
// Invalid values are silently replaced, never rejected.
func NormalizeEmpresa(s string) Empresa {
	if e, ok := ParseEmpresa(s); ok {
		return e
	}
	return EmpresaTelecom
}
