package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/memory"
)

func newLeadUC(t *testing.T) (*usecase.LeadUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	return usecase.NewLeadUseCase(memory.NewLeadRepository(store), memory.NewDealRepository(store)), store
}

func TestLeadCreate_StatusPorDefectoEsNew(t *testing.T) {
	uc, _ := newLeadUC(t)

	out, err := uc.Create(dto.CreateLeadRequest{Name: "Nuevo Contacto", Email: "nuevo@example.com"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.LeadStatusNew, out.Status)
	assert.NotEmpty(t, out.CreatedAt)
}

func TestLeadCreate_IDsUnicos(t *testing.T) {
	uc, _ := newLeadUC(t)

	a, err := uc.Create(dto.CreateLeadRequest{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateLeadRequest{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "dos creaciones seguidas deben recibir IDs distintos")
}

func TestLeadUpdate_ParcialSoloTocaCamposPresentes(t *testing.T) {
	uc, _ := newLeadUC(t)

	status := entity.LeadStatusQualified
	out, err := uc.Update("1", dto.UpdateLeadRequest{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.LeadStatusQualified, out.Status)
	assert.Equal(t, "Alice Johnson", out.Name, "los campos ausentes no se tocan")
	assert.Equal(t, "Tech Corp", out.Company)
}

func TestLeadUpdate_IDInexistente_DevuelveNilSinCrear(t *testing.T) {
	uc, _ := newLeadUC(t)

	name := "Fantasma"
	out, err := uc.Update("no-existe", dto.UpdateLeadRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)

	leads, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, 3, leads.Total, "el update fallido no debe crear registros")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión lead → deal
// ──────────────────────────────────────────────────────────────────────────────

func TestConvertToDeal_MarcaLeadYCreaDeal(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	leadRepo := memory.NewLeadRepository(store)
	dealRepo := memory.NewDealRepository(store)
	uc := usecase.NewLeadUseCase(leadRepo, dealRepo)

	deal, err := uc.ConvertToDeal("1", dto.ConvertLeadRequest{
		Name:              "Tech Corp Expansion",
		ClientName:        "Alice Johnson",
		Value:             decimal.NewFromInt(30000),
		AssignedManagerID: "2",
	})
	require.NoError(t, err)
	require.NotNil(t, deal)

	// El lead se conserva, con status converted.
	lead, err := leadRepo.GetByID("1")
	require.NoError(t, err)
	require.NotNil(t, lead, "el lead convertido no se elimina")
	assert.Equal(t, entity.LeadStatusConverted, lead.Status)

	// El deal nace con stage por defecto prospect.
	assert.Equal(t, entity.DealStageProspect, deal.Stage)
	assert.Equal(t, "Tech Corp Expansion", deal.Name)
	assert.True(t, deal.Value.Equal(decimal.NewFromInt(30000)))

	deals, err := dealRepo.List()
	require.NoError(t, err)
	assert.Len(t, deals, 3, "los 2 del seed más el recién creado")
}

func TestConvertToDeal_RespetaStageExplicito(t *testing.T) {
	uc, _ := newLeadUC(t)

	deal, err := uc.ConvertToDeal("2", dto.ConvertLeadRequest{
		Name:              "ABC Renewal",
		ClientName:        "Bob Smith",
		Stage:             entity.DealStageProposal,
		AssignedManagerID: "4",
	})
	require.NoError(t, err)
	require.NotNil(t, deal)
	assert.Equal(t, entity.DealStageProposal, deal.Stage)
}

// Si el lead no existe, la conversión completa es un no-op: ni lead marcado
// ni deal creado.
func TestConvertToDeal_LeadInexistente_NoCreaNada(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	dealRepo := memory.NewDealRepository(store)
	uc := usecase.NewLeadUseCase(memory.NewLeadRepository(store), dealRepo)

	deal, err := uc.ConvertToDeal("no-existe", dto.ConvertLeadRequest{
		Name:              "No debería existir",
		ClientName:        "Nadie",
		AssignedManagerID: "2",
	})
	require.NoError(t, err)
	assert.Nil(t, deal)

	deals, err := dealRepo.List()
	require.NoError(t, err)
	assert.Len(t, deals, 2, "no debe crearse ningún deal")
}
