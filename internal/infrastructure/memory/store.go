// Package memory implementa los puertos de repository sobre un almacén en
// memoria, volátil por diseño: el estado se construye con datos semilla al
// arrancar el proceso y se pierde al detenerlo.
//
// Cada mutación es copy-on-write: construye una colección nueva completa y la
// intercambia bajo un único RWMutex. Una lectura observa siempre el conjunto
// anterior o el posterior a una mutación, nunca un estado intermedio, incluso
// con llamadores concurrentes (escritor único serializado por el mutex).
package memory

import (
	"sync"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Store posee todas las colecciones de registros y la identidad de sesión
// activa. Se construye explícitamente y se inyecta por referencia a cada
// adaptador: no hay singleton ambiental.
type Store struct {
	mu sync.RWMutex

	users       []*entity.User
	leads       []*entity.Lead
	deals       []*entity.Deal
	tasks       []*entity.Task
	calls       []*entity.Call
	meetings    []*entity.Meeting
	products    []*entity.Product
	inventory   []*entity.InventoryItem
	quotations  []*entity.Quotation
	invoices    []*entity.Invoice
	payments    []*entity.Payment

	currentUser *entity.User
}

// NewStore construye un store vacío. Usar Seed() para cargar las fixtures de
// demostración.
func NewStore() *Store {
	return &Store{}
}

// SetCurrentUser reemplaza la identidad de sesión activa. Acepta cualquier
// User (o nil para cerrar sesión): la autenticación real queda fuera del
// núcleo y nada aquí asume que la identidad fue validada.
func (s *Store) SetCurrentUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.currentUser = nil
		return
	}
	cp := *u
	s.currentUser = &cp
}

// CurrentUser devuelve la identidad activa o nil si no hay sesión.
func (s *Store) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	cp := *s.currentUser
	return &cp
}

// ── Clones ────────────────────────────────────────────────────────────────────
// Los adaptadores entregan y guardan copias, nunca los punteros internos:
// así una entidad obtenida con GetByID puede mutarse libremente sin tocar el
// estado compartido hasta que un Update la intercambie completa.

func cloneUser(u *entity.User) *entity.User { cp := *u; return &cp }

func cloneLead(l *entity.Lead) *entity.Lead { cp := *l; return &cp }

func cloneDeal(d *entity.Deal) *entity.Deal { cp := *d; return &cp }

func cloneTask(t *entity.Task) *entity.Task { cp := *t; return &cp }

func cloneCall(c *entity.Call) *entity.Call { cp := *c; return &cp }

func cloneMeeting(m *entity.Meeting) *entity.Meeting {
	cp := *m
	cp.Participants = append([]string(nil), m.Participants...)
	return &cp
}

func cloneProduct(p *entity.Product) *entity.Product { cp := *p; return &cp }

func cloneInventoryItem(i *entity.InventoryItem) *entity.InventoryItem { cp := *i; return &cp }

func cloneQuotation(q *entity.Quotation) *entity.Quotation {
	cp := *q
	cp.Items = append([]entity.LineItem(nil), q.Items...)
	return &cp
}

func cloneInvoice(i *entity.Invoice) *entity.Invoice {
	cp := *i
	cp.Items = append([]entity.LineItem(nil), i.Items...)
	return &cp
}

func clonePayment(p *entity.Payment) *entity.Payment { cp := *p; return &cp }

// appended devuelve una colección nueva con el elemento al final, sin tocar la
// colección original (los snapshots ya entregados siguen siendo válidos).
func appended[T any](set []T, item T) []T {
	next := make([]T, len(set), len(set)+1)
	copy(next, set)
	return append(next, item)
}
