// Package catalog holds the main menu of the ERP: which modules exist, in
// which order, and which ones need a supervisor.
package catalog

import (
	"context"
	"fmt"

	"github.com/hochfrequenz/erp-console/internal/console"
	"github.com/hochfrequenz/erp-console/internal/domain"
	"github.com/hochfrequenz/erp-console/internal/menu"
)

// Modules binds the migrated modules. Nil fields fall back to a pending
// placeholder.
type Modules struct {
	IVA    menu.Action
	Audits menu.Action
}

// Pending returns an action announcing a module that still runs on the
// legacy system
func Pending(con *console.Console, name string) menu.Action {
	return func(context.Context) error {
		con.Printf("\n  [PENDIENTE DE MIGRACIÓN] → %s\n", name)
		con.Pause()
		return nil
	}
}

// Title returns the main menu heading for a session
func Title(s *domain.Session) string {
	store := s.Store()
	if store == "" {
		store = "Demo"
	}
	return fmt.Sprintf("SISTEMA ERP — %s", store)
}

// Entries builds the main menu table
func Entries(con *console.Console, mods Modules) []menu.Entry {
	pending := func(name string) menu.Action { return Pending(con, name) }
	orPending := func(a menu.Action, name string) menu.Action {
		if a != nil {
			return a
		}
		return pending(name)
	}
	sup := domain.SupervisorLevel

	return []menu.Entry{
		menu.Implemented(1, "Gestión de Clientes", pending("fer001 - Clientes")),
		menu.Implemented(2, "Gestión de Proveedores", pending("fer002 - Proveedores")),
		menu.Restricted(3, "Gestión de Vendedores", sup, "módulo de vendedores", pending("fer700 - Vendedores")),
		menu.Implemented(4, "Gestión de Depósitos", pending("fer030 - Depósitos")),
		menu.Restricted(5, "Gestión de Tarjetas", sup, "módulo tarjetas/crédito", pending("fer003 - Tarjetas/Crédito")),
		menu.Implemented(6, "Gestión de Artículos", pending("fer004 - Artículos")),
		menu.Implemented(7, "Control de Existencias", pending("fer005 - Existencias")),
		menu.Implemented(8, "Gestión de Compras", pending("fer006 - Compras")),
		menu.Implemented(9, "Gestión de Ventas", pending("fer007 - Ventas")),
		menu.Implemented(10, "Precios", pending("fer008 - Precios")),
		menu.Implemented(11, "Ofertas", pending("fer009 - Ofertas")),
		menu.Implemented(12, "Control de Caja", pending("fer100 - Caja")),
		menu.Implemented(13, "Listado Mayor de Cuentas", pending("may000 - Mayor")),
		menu.Restricted(14, "Liquidación de I.V.A.", sup, "liquidaciones/IVA", orPending(mods.IVA, "fer110 - IVA")),
		menu.Implemented(15, "Estadísticas", pending("fer120 - Estadísticas")),
		menu.Restricted(16, "Auditorías de Operaciones", sup, "auditorías/operaciones", orPending(mods.Audits, "fer130 - Auditorías")),
		menu.Implemented(17, "Cuentas Corrientes", pending("fer140 - Ctas.Ctes.")),
		menu.Exit(0, "Salir"),
	}
}

// MainMenu assembles the main menu for a session
func MainMenu(s *domain.Session, con *console.Console, auditor menu.Auditor, reader menu.Reader, mods Modules) (*menu.Menu, error) {
	return menu.New(menu.Config{
		Title:   Title(s),
		Entries: Entries(con, mods),
		Session: s,
		Console: con,
		Auditor: auditor,
		Reader:  reader,
	})
}
