package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Seed
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_CargaDatosDeDemostracion(t *testing.T) {
	s := NewStore()
	s.Seed()

	users, err := NewUserRepository(s).List()
	require.NoError(t, err)
	assert.Len(t, users, 5)

	leads, err := NewLeadRepository(s).List()
	require.NoError(t, err)
	assert.Len(t, leads, 3)

	deals, err := NewDealRepository(s).List()
	require.NoError(t, err)
	assert.Len(t, deals, 2)

	invoices, err := NewInvoiceRepository(s).List()
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-001", invoices[0].InvoiceNumber)
	assert.Equal(t, entity.InvoiceStatusPaid, invoices[0].Status)

	items, err := NewInventoryRepository(s).List()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Copy-on-write: las lecturas son snapshots aislados
// ──────────────────────────────────────────────────────────────────────────────

// Mutar una entidad obtenida con GetByID no debe tocar el estado del store
// hasta que un Update la intercambie completa.
func TestGetByID_DevuelveCopiaAislada(t *testing.T) {
	s := NewStore()
	s.Seed()
	repo := NewLeadRepository(s)

	lead, err := repo.GetByID("1")
	require.NoError(t, err)
	require.NotNil(t, lead)

	lead.Name = "Mutado localmente"

	again, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", again.Name,
		"mutar el clon no debe afectar el estado del store")
}

// Un listado tomado antes de una mutación conserva el conjunto anterior.
func TestList_SnapshotNoVeMutacionesPosteriores(t *testing.T) {
	s := NewStore()
	repo := NewLeadRepository(s)

	require.NoError(t, repo.Create(&entity.Lead{ID: "a", Name: "Primero", Status: entity.LeadStatusNew}))

	before, err := repo.List()
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, repo.Create(&entity.Lead{ID: "b", Name: "Segundo", Status: entity.LeadStatusNew}))

	assert.Len(t, before, 1, "el snapshot anterior no debe crecer")

	after, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Silencio ante IDs inexistentes
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_IDInexistente_DevuelveNilNil(t *testing.T) {
	s := NewStore()
	s.Seed()

	lead, err := NewLeadRepository(s).GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, lead)

	invoice, err := NewInvoiceRepository(s).GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, invoice)
}

// Update contra un ID inexistente no crea nada ni falla.
func TestUpdate_IDInexistente_EsNoOp(t *testing.T) {
	s := NewStore()
	repo := NewDealRepository(s)

	err := repo.Update(&entity.Deal{ID: "fantasma", Name: "No debería aparecer", Value: decimal.NewFromInt(1)})
	require.NoError(t, err)

	deals, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, deals, "update sobre ID inexistente no debe insertar")
}

// SetQuantity contra un producto sin ítem de inventario no crea nada ni falla.
func TestSetQuantity_ProductoSinItem_EsNoOp(t *testing.T) {
	s := NewStore()
	repo := NewInventoryRepository(s)

	require.NoError(t, repo.SetQuantity("sin-item", 40))

	items, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSetQuantity_AsignaCantidadAbsoluta(t *testing.T) {
	s := NewStore()
	s.Seed()
	repo := NewInventoryRepository(s)

	require.NoError(t, repo.SetQuantity("1", 7))

	item, err := repo.GetByProductID("1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 7, item.Quantity, "la cantidad es absoluta, no un delta")

	// Idempotente: repetir la misma asignación no cambia nada.
	require.NoError(t, repo.SetQuantity("1", 7))
	item, err = repo.GetByProductID("1")
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión activa
// ──────────────────────────────────────────────────────────────────────────────

func TestSesion_SetYClear(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.CurrentUser(), "sin login no hay sesión")

	s.SetCurrentUser(&entity.User{ID: "9", Name: "Temporal", Role: entity.RoleEmployee})
	got := s.CurrentUser()
	require.NotNil(t, got)
	assert.Equal(t, "9", got.ID)

	// La identidad devuelta es una copia.
	got.Name = "Mutado"
	assert.Equal(t, "Temporal", s.CurrentUser().Name)

	s.SetCurrentUser(nil)
	assert.Nil(t, s.CurrentUser(), "logout limpia la sesión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conteo de facturas (base del consecutivo INV-NNN)
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCount(t *testing.T) {
	s := NewStore()
	repo := NewInvoiceRepository(s)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, repo.Create(&entity.Invoice{ID: "1", InvoiceNumber: "INV-001", Status: entity.InvoiceStatusUnpaid}))

	n, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
