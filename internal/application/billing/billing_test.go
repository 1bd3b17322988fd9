package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/billing"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/memory"
)

// fixture con el seed completo: 1 cotización (total 5000, sent), 1 factura
// (INV-001, paid) y 1 pago.
type billingFixture struct {
	store      *memory.Store
	quotations *billing.QuotationUseCase
	invoices   *billing.InvoiceUseCase
	payments   *billing.PaymentUseCase
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	quotationRepo := memory.NewQuotationRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	productRepo := memory.NewProductRepository(store)
	return &billingFixture{
		store:      store,
		quotations: billing.NewQuotationUseCase(quotationRepo, productRepo),
		invoices:   billing.NewInvoiceUseCase(invoiceRepo, quotationRepo, productRepo),
		payments:   billing.NewPaymentUseCase(memory.NewPaymentRepository(store), invoiceRepo),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cotizaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestQuotationCreate_PrecioEnCeroTomaElDelCatalogo(t *testing.T) {
	f := newBillingFixture(t)

	// Producto 2 del seed: Consulting Services, 150.
	out, err := f.quotations.Create(dto.CreateQuotationRequest{
		ClientName: "Carol White",
		Items: []dto.LineItemDTO{
			{ProductID: "2", Quantity: 4},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Price.Equal(decimal.NewFromInt(150)),
		"precio en cero debe congelarse al precio actual del producto")
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, entity.QuotationStatusDraft, out.Status, "status por defecto")
}

func TestQuotationCreate_PrecioExplicitoSeRespeta(t *testing.T) {
	f := newBillingFixture(t)

	out, err := f.quotations.Create(dto.CreateQuotationRequest{
		ClientName: "Carol White",
		Items: []dto.LineItemDTO{
			{ProductID: "2", Quantity: 2, Price: decimal.NewFromInt(120)},
		},
		Status: entity.QuotationStatusSent,
	})
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(240)),
		"el precio explícito pisa el del catálogo")
	assert.Equal(t, entity.QuotationStatusSent, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión cotización → factura
// ──────────────────────────────────────────────────────────────────────────────

func TestConvertFromQuotation_CopiaLineasYCalculaImpuesto(t *testing.T) {
	f := newBillingFixture(t)

	// Seed: 1 factura existente → la nueva debe ser INV-002. La cotización 1
	// tiene total 5000 → impuesto 500, gran total 5500.
	out, err := f.invoices.ConvertFromQuotation("1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "INV-002", out.InvoiceNumber)
	assert.Equal(t, "Alice Johnson", out.ClientName)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, out.Tax.Equal(decimal.NewFromInt(500)), "impuesto fijo del 10 por ciento")
	assert.True(t, out.GrandTotal.Equal(decimal.NewFromInt(5500)))
	assert.Equal(t, entity.InvoiceStatusUnpaid, out.Status)
	assert.NotEmpty(t, out.DueDate)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "1", out.Items[0].ProductID)
}

func TestConvertFromQuotation_NoTocaElStatusDeLaCotizacion(t *testing.T) {
	f := newBillingFixture(t)

	_, err := f.invoices.ConvertFromQuotation("1")
	require.NoError(t, err)

	q, err := memory.NewQuotationRepository(f.store).GetByID("1")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, entity.QuotationStatusSent, q.Status,
		"la conversión no marca la cotización")
}

// Convertir dos veces la misma cotización produce dos facturas con
// consecutivos distintos. Comportamiento heredado, conservado a propósito.
func TestConvertFromQuotation_DobleConversionDuplicaFacturas(t *testing.T) {
	f := newBillingFixture(t)

	first, err := f.invoices.ConvertFromQuotation("1")
	require.NoError(t, err)
	second, err := f.invoices.ConvertFromQuotation("1")
	require.NoError(t, err)

	assert.Equal(t, "INV-002", first.InvoiceNumber)
	assert.Equal(t, "INV-003", second.InvoiceNumber)
	assert.NotEqual(t, first.ID, second.ID)

	list, err := f.invoices.List()
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
}

func TestConvertFromQuotation_CotizacionInexistente_NoCreaNada(t *testing.T) {
	f := newBillingFixture(t)

	out, err := f.invoices.ConvertFromQuotation("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)

	list, err := f.invoices.List()
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total, "solo la factura del seed")
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas directas y actualización
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_Directa(t *testing.T) {
	f := newBillingFixture(t)

	out, err := f.invoices.Create(dto.CreateInvoiceRequest{
		ClientName: "Carol White",
		Items: []dto.LineItemDTO{
			{ProductID: "3", Quantity: 2}, // Training Package, 2000
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "INV-002", out.InvoiceNumber)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(4000)))
	assert.True(t, out.Tax.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, entity.InvoiceStatusUnpaid, out.Status)
}

func TestInvoiceUpdate_ParcialYNilEnInexistente(t *testing.T) {
	f := newBillingFixture(t)

	status := entity.InvoiceStatusOverdue
	out, err := f.invoices.Update("1", dto.UpdateInvoiceRequest{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.InvoiceStatusOverdue, out.Status)
	assert.Equal(t, "Bob Smith", out.ClientName, "los campos ausentes no se tocan")

	missing, err := f.invoices.Update("no-existe", dto.UpdateInvoiceRequest{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentAdd_MarcaLaFacturaComoPagada(t *testing.T) {
	f := newBillingFixture(t)

	// Factura nueva, unpaid, gran total 5500.
	inv, err := f.invoices.ConvertFromQuotation("1")
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusUnpaid, inv.Status)

	// Un pago de 1 (muy por debajo del total) también marca paid: no hay
	// contabilidad de pagos parciales.
	pay, err := f.payments.Add(dto.CreatePaymentRequest{
		InvoiceID: inv.ID,
		Amount:    decimal.NewFromInt(1),
		Method:    entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.NotNil(t, pay)
	assert.NotEmpty(t, pay.Date, "sin fecha explícita se usa la de hoy")

	after, err := f.invoices.GetByID(inv.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, entity.InvoiceStatusPaid, after.Status)
}

func TestPaymentAdd_FacturaInexistente_RegistraElPagoIgual(t *testing.T) {
	f := newBillingFixture(t)

	pay, err := f.payments.Add(dto.CreatePaymentRequest{
		InvoiceID: "no-existe",
		Amount:    decimal.NewFromInt(100),
		Method:    entity.PaymentMethodCard,
	})
	require.NoError(t, err)
	require.NotNil(t, pay)

	list, err := f.payments.List()
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total, "el pago del seed más el huérfano")
}
