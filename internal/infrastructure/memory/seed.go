package memory

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Seed carga el conjunto fijo de datos de demostración. Se invoca una vez al
// arrancar el proceso; como no hay persistencia, cada arranque parte de aquí.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []*entity.User{
		{ID: "1", Name: "Admin User", Email: "admin@crm.com", Role: entity.RoleAdmin, CreatedAt: "2026-01-01"},
		{ID: "2", Name: "John Manager", Email: "john@crm.com", Role: entity.RoleManager, CreatedAt: "2026-01-05"},
		{ID: "3", Name: "Sarah Employee", Email: "sarah@crm.com", Role: entity.RoleEmployee, CreatedAt: "2026-01-10"},
		{ID: "4", Name: "Mike Manager", Email: "mike@crm.com", Role: entity.RoleManager, CreatedAt: "2026-01-15"},
		{ID: "5", Name: "Emma Employee", Email: "emma@crm.com", Role: entity.RoleEmployee, CreatedAt: "2026-01-20"},
	}

	s.leads = []*entity.Lead{
		{ID: "1", Name: "Alice Johnson", Email: "alice@example.com", Phone: "555-0101", Company: "Tech Corp", Source: "Website", Status: entity.LeadStatusNew, CreatedAt: "2026-02-01"},
		{ID: "2", Name: "Bob Smith", Email: "bob@example.com", Phone: "555-0102", Company: "ABC Industries", Source: "Referral", Status: entity.LeadStatusContacted, CreatedAt: "2026-02-03"},
		{ID: "3", Name: "Carol White", Email: "carol@example.com", Phone: "555-0103", Company: "XYZ Ltd", Source: "Social Media", Status: entity.LeadStatusQualified, CreatedAt: "2026-02-05"},
	}

	s.deals = []*entity.Deal{
		{ID: "1", Name: "Tech Corp Software License", ClientName: "Alice Johnson", Value: decimal.NewFromInt(50000), Stage: entity.DealStageProposal, AssignedManagerID: "2", ExpectedClosingDate: "2026-03-01", CreatedAt: "2026-02-10"},
		{ID: "2", Name: "ABC Industries Consulting", ClientName: "Bob Smith", Value: decimal.NewFromInt(75000), Stage: entity.DealStageNegotiation, AssignedManagerID: "4", ExpectedClosingDate: "2026-03-15", CreatedAt: "2026-02-12"},
	}

	s.tasks = []*entity.Task{
		{ID: "1", Title: "Follow up with Tech Corp", AssignedEmployeeID: "3", Deadline: "2026-02-20", Status: entity.TaskStatusInProgress, Notes: "Send proposal document", RelatedDealID: "1"},
		{ID: "2", Title: "Prepare demo for ABC Industries", AssignedEmployeeID: "5", Deadline: "2026-02-18", Status: entity.TaskStatusPending, Notes: "Setup demo environment", RelatedDealID: "2"},
	}

	s.calls = []*entity.Call{
		{ID: "1", Title: "Initial call with Tech Corp", RelatedDealID: "1", DateTime: "2026-02-11T10:00:00", Duration: 30, CallType: entity.CallTypeOutbound, Notes: "Discussed requirements", Outcome: "Positive", AssignedEmployeeID: "3"},
	}

	s.meetings = []*entity.Meeting{
		{ID: "1", Title: "Proposal presentation - Tech Corp", Date: "2026-02-22", Time: "14:00", Location: "Office Conference Room A", Participants: []string{"2", "3"}, Notes: "", Status: entity.MeetingStatusScheduled, RelatedDealID: "1"},
	}

	s.products = []*entity.Product{
		{ID: "1", Name: "CRM Software Pro", Price: decimal.NewFromInt(5000), Category: "Software", Description: "Full-featured CRM solution"},
		{ID: "2", Name: "Consulting Services", Price: decimal.NewFromInt(150), Category: "Services", Description: "Per hour consulting"},
		{ID: "3", Name: "Training Package", Price: decimal.NewFromInt(2000), Category: "Services", Description: "Staff training program"},
	}

	s.inventory = []*entity.InventoryItem{
		{ID: "1", ProductID: "1", Quantity: 100, LowStockThreshold: 10},
		{ID: "2", ProductID: "3", Quantity: 5, LowStockThreshold: 3},
	}

	s.quotations = []*entity.Quotation{
		{
			ID:         "1",
			ClientName: "Alice Johnson",
			Items: []entity.LineItem{
				{ProductID: "1", Quantity: 1, Price: decimal.NewFromInt(5000)},
			},
			TotalAmount: decimal.NewFromInt(5000),
			Status:      entity.QuotationStatusSent,
			CreatedAt:   "2026-02-12",
			ValidUntil:  "2026-03-12",
		},
	}

	s.invoices = []*entity.Invoice{
		{
			ID:            "1",
			InvoiceNumber: "INV-001",
			ClientName:    "Bob Smith",
			Items: []entity.LineItem{
				{ProductID: "2", Quantity: 10, Price: decimal.NewFromInt(150)},
			},
			TotalAmount: decimal.NewFromInt(1500),
			Tax:         decimal.NewFromInt(150),
			Status:      entity.InvoiceStatusPaid,
			CreatedAt:   "2026-02-05",
			DueDate:     "2026-03-05",
		},
	}

	s.payments = []*entity.Payment{
		{ID: "1", InvoiceID: "1", Amount: decimal.NewFromInt(1650), Method: entity.PaymentMethodBankTransfer, Date: "2026-02-10", Notes: "Full payment received"},
	}
}
