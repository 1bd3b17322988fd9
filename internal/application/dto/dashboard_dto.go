package dto

import "github.com/shopspring/decimal"

// StageCountDTO conteo de deals por etapa del pipeline.
type StageCountDTO struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// LeadFunnelDTO conteo de leads por estado.
type LeadFunnelDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ManagerPerformanceDTO rendimiento por manager: deals asignados, ganados y
// valor ganado.
type ManagerPerformanceDTO struct {
	ManagerID   string          `json:"manager_id"`
	ManagerName string          `json:"manager_name"`
	Deals       int             `json:"deals"`
	Won         int             `json:"won"`
	WonValue    decimal.Decimal `json:"won_value"`
}

// ActivitySummaryDTO totales y completados por tipo de actividad.
type ActivitySummaryDTO struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// DashboardSummaryDTO resumen global para admin. Todo se recalcula desde los
// conjuntos crudos en cada lectura; nada se cachea.
type DashboardSummaryDTO struct {
	TotalRevenue       decimal.Decimal         `json:"total_revenue"`
	TotalDeals         int                     `json:"total_deals"`
	ClosedDeals        int                     `json:"closed_deals"`
	ConversionRate     int                     `json:"conversion_rate"` // porcentaje redondeado
	AvgWonDealValue    decimal.Decimal         `json:"avg_won_deal_value"`
	ActiveLeads        int                     `json:"active_leads"` // leads con status != converted
	TotalLeads         int                     `json:"total_leads"`
	OutstandingAmount  decimal.Decimal         `json:"outstanding_amount"` // facturas unpaid: total + impuesto
	DealsByStage       []StageCountDTO         `json:"deals_by_stage"`
	LeadFunnel         []LeadFunnelDTO         `json:"lead_funnel"`
	ManagerPerformance []ManagerPerformanceDTO `json:"manager_performance"`
	ActivitySummary    []ActivitySummaryDTO    `json:"activity_summary"`
	LowStockItems      []InventoryItemResponse `json:"low_stock_items"`
}

// MyDashboardDTO resumen personal para manager y employee: solo lo propio.
type MyDashboardDTO struct {
	MyDeals          int `json:"my_deals"`
	MyTasks          int `json:"my_tasks"`
	PendingTasks     int `json:"pending_tasks"`
	MyCalls          int `json:"my_calls"`
	MyMeetings       int `json:"my_meetings"`
	UpcomingMeetings int `json:"upcoming_meetings"`
	CompletionRate   int `json:"completion_rate"` // % de tareas propias completadas
}
