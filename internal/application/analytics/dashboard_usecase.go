// Package analytics contiene los agregados de negocio del dashboard y los
// reportes. Nada se almacena ni se cachea: cada lectura recalcula desde los
// conjuntos crudos del store, así un flag como "low stock" o la tasa de
// conversión reflejan siempre el estado actual.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var dealStages = []string{
	entity.DealStageProspect,
	entity.DealStageProposal,
	entity.DealStageNegotiation,
	entity.DealStageClosedWon,
	entity.DealStageClosedLost,
}

var leadStatuses = []string{
	entity.LeadStatusNew,
	entity.LeadStatusContacted,
	entity.LeadStatusQualified,
	entity.LeadStatusConverted,
}

// DashboardUseCase construye los resúmenes para las vistas de dashboard y
// reportes.
type DashboardUseCase struct {
	userRepo      repository.UserRepository
	leadRepo      repository.LeadRepository
	dealRepo      repository.DealRepository
	taskRepo      repository.TaskRepository
	callRepo      repository.CallRepository
	meetingRepo   repository.MeetingRepository
	invoiceRepo   repository.InvoiceRepository
	paymentRepo   repository.PaymentRepository
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	userRepo repository.UserRepository,
	leadRepo repository.LeadRepository,
	dealRepo repository.DealRepository,
	taskRepo repository.TaskRepository,
	callRepo repository.CallRepository,
	meetingRepo repository.MeetingRepository,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:      userRepo,
		leadRepo:      leadRepo,
		dealRepo:      dealRepo,
		taskRepo:      taskRepo,
		callRepo:      callRepo,
		meetingRepo:   meetingRepo,
		invoiceRepo:   invoiceRepo,
		paymentRepo:   paymentRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
	}
}

// GetSummary construye el resumen global (vista de admin y reportes).
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	leads, err := uc.leadRepo.List()
	if err != nil {
		return nil, err
	}
	deals, err := uc.dealRepo.List()
	if err != nil {
		return nil, err
	}
	tasks, err := uc.taskRepo.List()
	if err != nil {
		return nil, err
	}
	calls, err := uc.callRepo.List()
	if err != nil {
		return nil, err
	}
	meetings, err := uc.meetingRepo.List()
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.List()
	if err != nil {
		return nil, err
	}

	// Ingresos: suma de todos los pagos registrados.
	totalRevenue := decimal.Zero
	for _, p := range payments {
		totalRevenue = totalRevenue.Add(p.Amount)
	}

	// Pipeline por etapa, ganados y valor promedio ganado.
	byStage := make(map[string]int, len(dealStages))
	wonValue := decimal.Zero
	closedWon := 0
	for _, d := range deals {
		byStage[d.Stage]++
		if d.Stage == entity.DealStageClosedWon {
			closedWon++
			wonValue = wonValue.Add(d.Value)
		}
	}
	stageCounts := make([]dto.StageCountDTO, 0, len(dealStages))
	for _, stage := range dealStages {
		stageCounts = append(stageCounts, dto.StageCountDTO{Stage: stage, Count: byStage[stage]})
	}
	conversionRate := 0
	if len(deals) > 0 {
		conversionRate = int(decimal.NewFromInt(int64(closedWon * 100)).
			Div(decimal.NewFromInt(int64(len(deals)))).Round(0).IntPart())
	}
	avgWon := decimal.Zero
	if closedWon > 0 {
		avgWon = wonValue.Div(decimal.NewFromInt(int64(closedWon))).Round(0)
	}

	// Embudo de leads.
	byStatus := make(map[string]int, len(leadStatuses))
	activeLeads := 0
	for _, l := range leads {
		byStatus[l.Status]++
		if l.Status != entity.LeadStatusConverted {
			activeLeads++
		}
	}
	funnel := make([]dto.LeadFunnelDTO, 0, len(leadStatuses))
	for _, status := range leadStatuses {
		funnel = append(funnel, dto.LeadFunnelDTO{Status: status, Count: byStatus[status]})
	}

	// Rendimiento por manager.
	performance := []dto.ManagerPerformanceDTO{}
	for _, u := range users {
		if u.Role != entity.RoleManager {
			continue
		}
		perf := dto.ManagerPerformanceDTO{ManagerID: u.ID, ManagerName: u.Name, WonValue: decimal.Zero}
		for _, d := range deals {
			if d.AssignedManagerID != u.ID {
				continue
			}
			perf.Deals++
			if d.Stage == entity.DealStageClosedWon {
				perf.Won++
				perf.WonValue = perf.WonValue.Add(d.Value)
			}
		}
		performance = append(performance, perf)
	}

	// Resumen de actividades. Las llamadas no tienen estado: se cuentan
	// completadas por definición.
	completedTasks := 0
	for _, t := range tasks {
		if t.Status == entity.TaskStatusCompleted {
			completedTasks++
		}
	}
	completedMeetings := 0
	for _, m := range meetings {
		if m.Status == entity.MeetingStatusCompleted {
			completedMeetings++
		}
	}
	activitySummary := []dto.ActivitySummaryDTO{
		{Name: "Tasks", Total: len(tasks), Completed: completedTasks},
		{Name: "Calls", Total: len(calls), Completed: len(calls)},
		{Name: "Meetings", Total: len(meetings), Completed: completedMeetings},
	}

	// Facturas pendientes: total + impuesto de las unpaid.
	outstanding := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusUnpaid {
			outstanding = outstanding.Add(inv.GrandTotal())
		}
	}

	lowStock, err := uc.lowStockItems()
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:       totalRevenue,
		TotalDeals:         len(deals),
		ClosedDeals:        closedWon,
		ConversionRate:     conversionRate,
		AvgWonDealValue:    avgWon,
		ActiveLeads:        activeLeads,
		TotalLeads:         len(leads),
		OutstandingAmount:  outstanding,
		DealsByStage:       stageCounts,
		LeadFunnel:         funnel,
		ManagerPerformance: performance,
		ActivitySummary:    activitySummary,
		LowStockItems:      lowStock,
	}, nil
}

// GetMyDashboard construye el resumen personal. Para un manager "mis deals"
// son los asignados a él; para un employee los deals no aplican y cuentan
// sus tareas, llamadas y reuniones propias.
func (uc *DashboardUseCase) GetMyDashboard(userID, role string) (*dto.MyDashboardDTO, error) {
	deals, err := uc.dealRepo.List()
	if err != nil {
		return nil, err
	}
	tasks, err := uc.taskRepo.List()
	if err != nil {
		return nil, err
	}
	calls, err := uc.callRepo.List()
	if err != nil {
		return nil, err
	}
	meetings, err := uc.meetingRepo.List()
	if err != nil {
		return nil, err
	}

	out := &dto.MyDashboardDTO{}
	if role == entity.RoleManager {
		for _, d := range deals {
			if d.AssignedManagerID == userID {
				out.MyDeals++
			}
		}
	}
	completed := 0
	for _, t := range tasks {
		if t.AssignedEmployeeID != userID {
			continue
		}
		out.MyTasks++
		switch t.Status {
		case entity.TaskStatusCompleted:
			completed++
		default:
			out.PendingTasks++
		}
	}
	for _, c := range calls {
		if c.AssignedEmployeeID == userID {
			out.MyCalls++
		}
	}
	for _, m := range meetings {
		if !m.HasParticipant(userID) {
			continue
		}
		out.MyMeetings++
		if m.Status == entity.MeetingStatusScheduled {
			out.UpcomingMeetings++
		}
	}
	if out.MyTasks > 0 {
		out.CompletionRate = int(decimal.NewFromInt(int64(completed * 100)).
			Div(decimal.NewFromInt(int64(out.MyTasks))).Round(0).IntPart())
	}
	return out, nil
}

// lowStockItems deriva el estado "low stock" (quantity <= threshold) en el
// momento de la lectura.
func (uc *DashboardUseCase) lowStockItems() ([]dto.InventoryItemResponse, error) {
	inventory, err := uc.inventoryRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	out := []dto.InventoryItemResponse{}
	for _, it := range inventory {
		if !it.IsLowStock() {
			continue
		}
		out = append(out, dto.InventoryItemResponse{
			ID:                it.ID,
			ProductID:         it.ProductID,
			ProductName:       names[it.ProductID],
			Quantity:          it.Quantity,
			LowStockThreshold: it.LowStockThreshold,
			LowStock:          true,
		})
	}
	return out, nil
}
