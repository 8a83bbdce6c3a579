package domain

// AuthLevel ranks the menu scope a user may reach; higher allows more
type AuthLevel int

const (
	LevelNone       AuthLevel = 0
	LevelLow        AuthLevel = 1
	LevelMedium     AuthLevel = 2
	SupervisorLevel AuthLevel = 3
)

// Side selects which IVA ledger is being worked on
type Side string

const (
	SideVentas  Side = "V"
	SideCompras Side = "C"
)

// Title returns the upper-case ledger name used in headings
func (s Side) Title() string {
	if s == SideVentas {
		return "VENTAS"
	}
	return "COMPRAS"
}

// Noun returns the lower-case ledger name used in prompt titles
func (s Side) Noun() string {
	if s == SideVentas {
		return "ventas"
	}
	return "compras"
}
