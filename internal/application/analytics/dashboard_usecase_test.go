package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/analytics"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/memory"
)

func newDashboardUC(t *testing.T) (*analytics.DashboardUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	uc := analytics.NewDashboardUseCase(
		memory.NewUserRepository(store),
		memory.NewLeadRepository(store),
		memory.NewDealRepository(store),
		memory.NewTaskRepository(store),
		memory.NewCallRepository(store),
		memory.NewMeetingRepository(store),
		memory.NewInvoiceRepository(store),
		memory.NewPaymentRepository(store),
		memory.NewInventoryRepository(store),
		memory.NewProductRepository(store),
	)
	return uc, store
}

func TestGetSummary_AgregadosDelSeed(t *testing.T) {
	uc, _ := newDashboardUC(t)

	out, err := uc.GetSummary()
	require.NoError(t, err)

	// Ingresos: único pago del seed, 1650.
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(1650)))

	// Pipeline: 2 deals, ninguno closed-won.
	assert.Equal(t, 2, out.TotalDeals)
	assert.Equal(t, 0, out.ClosedDeals)
	assert.Equal(t, 0, out.ConversionRate)
	assert.True(t, out.AvgWonDealValue.IsZero())

	// Leads: 3 del seed, ninguno convertido.
	assert.Equal(t, 3, out.TotalLeads)
	assert.Equal(t, 3, out.ActiveLeads)

	// La factura del seed está pagada: nada pendiente.
	assert.True(t, out.OutstandingAmount.IsZero())

	// Todas las etapas y estados aparecen, incluso con conteo cero.
	assert.Len(t, out.DealsByStage, 5)
	assert.Len(t, out.LeadFunnel, 4)

	// Dos managers en el seed, cada uno con un deal asignado.
	require.Len(t, out.ManagerPerformance, 2)
	for _, perf := range out.ManagerPerformance {
		assert.Equal(t, 1, perf.Deals)
		assert.Equal(t, 0, perf.Won)
	}

	// Las llamadas se cuentan completadas por definición (no tienen estado).
	require.Len(t, out.ActivitySummary, 3)
	assert.Equal(t, "Calls", out.ActivitySummary[1].Name)
	assert.Equal(t, out.ActivitySummary[1].Total, out.ActivitySummary[1].Completed)

	// Inventario del seed: nada por debajo del umbral.
	assert.Empty(t, out.LowStockItems)
}

func TestGetSummary_ReflejaLosCambiosSinRecalculoExplicito(t *testing.T) {
	uc, store := newDashboardUC(t)

	// Cerrar un deal como ganado y dejar stock bajo: la siguiente lectura
	// debe reflejar ambos sin ningún paso intermedio.
	dealRepo := memory.NewDealRepository(store)
	deal, err := dealRepo.GetByID("1")
	require.NoError(t, err)
	deal.Stage = entity.DealStageClosedWon
	require.NoError(t, dealRepo.Update(deal))

	require.NoError(t, memory.NewInventoryRepository(store).SetQuantity("1", 4))

	out, err := uc.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 1, out.ClosedDeals)
	assert.Equal(t, 50, out.ConversionRate, "1 de 2 deals ganados")
	assert.True(t, out.AvgWonDealValue.Equal(decimal.NewFromInt(50000)))

	require.Len(t, out.LowStockItems, 1)
	assert.Equal(t, "1", out.LowStockItems[0].ProductID)
}

func TestGetSummary_FacturaUnpaidSumaTotalMasImpuesto(t *testing.T) {
	uc, store := newDashboardUC(t)

	require.NoError(t, memory.NewInvoiceRepository(store).Create(&entity.Invoice{
		ID:            "99",
		InvoiceNumber: "INV-099",
		TotalAmount:   decimal.NewFromInt(1000),
		Tax:           decimal.NewFromInt(100),
		Status:        entity.InvoiceStatusUnpaid,
	}))

	out, err := uc.GetSummary()
	require.NoError(t, err)
	assert.True(t, out.OutstandingAmount.Equal(decimal.NewFromInt(1100)),
		"pendiente = total + impuesto de las unpaid")
}

func TestGetMyDashboard_Manager(t *testing.T) {
	uc, _ := newDashboardUC(t)

	out, err := uc.GetMyDashboard("2", entity.RoleManager)
	require.NoError(t, err)

	assert.Equal(t, 1, out.MyDeals, "el deal 1 está asignado al manager 2")
	assert.Equal(t, 0, out.MyTasks)
	assert.Equal(t, 1, out.MyMeetings, "participa en la reunión del seed")
	assert.Equal(t, 1, out.UpcomingMeetings)
}

func TestGetMyDashboard_Employee(t *testing.T) {
	uc, _ := newDashboardUC(t)

	out, err := uc.GetMyDashboard("3", entity.RoleEmployee)
	require.NoError(t, err)

	assert.Equal(t, 0, out.MyDeals, "los deals no aplican al rol employee")
	assert.Equal(t, 1, out.MyTasks)
	assert.Equal(t, 1, out.PendingTasks, "in-progress cuenta como pendiente")
	assert.Equal(t, 1, out.MyCalls)
	assert.Equal(t, 1, out.MyMeetings)
	assert.Equal(t, 0, out.CompletionRate)
}

func TestGetMyDashboard_CompletionRate(t *testing.T) {
	uc, store := newDashboardUC(t)

	taskRepo := memory.NewTaskRepository(store)
	task, err := taskRepo.GetByID("1")
	require.NoError(t, err)
	task.Status = entity.TaskStatusCompleted
	require.NoError(t, taskRepo.Update(task))

	out, err := uc.GetMyDashboard("3", entity.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, 100, out.CompletionRate)
	assert.Equal(t, 0, out.PendingTasks)
}
