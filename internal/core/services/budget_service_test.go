package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/core/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockBudgetRepository is a mock type for the BudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

// Ensure mock implements the interface
var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

// --- Test Suite Setup ---

type BudgetServiceTestSuite struct {
	suite.Suite
	store          *store.Store
	mockBudgetRepo *MockBudgetRepository
	mockEventRepo  *MockEventRepository
	mockClientRepo *MockClientRepository
	service        portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.store = store.New()
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockClientRepo = new(MockClientRepository)
	clientSvc := services.NewClientService(suite.store, suite.mockClientRepo)
	suite.service = services.NewBudgetService(
		suite.store, suite.mockBudgetRepo, suite.mockEventRepo, suite.mockClientRepo, clientSvc)
}

// createPendingBudget drives the service through a successful create so the
// suite tests run against real state, not hand-built fixtures.
func (suite *BudgetServiceTestSuite) createPendingBudget() *domain.Budget {
	ctx := context.Background()
	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, dto.CreateBudgetRequest{
		Client:         dto.ClientReference{Name: "Maria Silva", Email: "maria@example.com"},
		PricePerPerson: decimal.NewFromInt(100),
		Headcount:      50,
		EventDate:      time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Staff: []dto.PersonPayload{
			{Name: "Ana", Role: "chef", Pay: decimal.NewFromInt(400)},
		},
	})
	suite.Require().NoError(err)
	return budget
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	budget := suite.createPendingBudget()

	suite.Equal(domain.BudgetPending, budget.Status)
	suite.Equal("Maria Silva", budget.ClientName)
	suite.True(decimal.NewFromInt(5000).Equal(budget.TotalValue()), "total is price per person times headcount")
	suite.Empty(budget.EventID)

	// The client was registered as part of the create.
	client, ok := suite.store.FindClientByName("Maria Silva")
	suite.Require().True(ok)
	suite.Equal(client.ClientID, budget.ClientID)
	suite.Empty(client.EventIDs, "no event exists yet")
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_InvalidInputs() {
	ctx := context.Background()

	_, err := suite.service.CreateBudget(ctx, dto.CreateBudgetRequest{
		Client: dto.ClientReference{Name: "Maria Silva"}, PricePerPerson: decimal.NewFromInt(100), Headcount: 0,
		EventDate: time.Now(),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateBudget(ctx, dto.CreateBudgetRequest{
		Client: dto.ClientReference{Name: "Maria Silva"}, PricePerPerson: decimal.Zero, Headcount: 10,
		EventDate: time.Now(),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Empty(suite.store.ListBudgets())
	suite.Empty(suite.store.ListClients(), "validation failures precede client resolution")
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_SaveErrorKeepsClient() {
	ctx := context.Background()
	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).
		Return(fmt.Errorf("backend unreachable")).Once()

	_, err := suite.service.CreateBudget(ctx, dto.CreateBudgetRequest{
		Client:         dto.ClientReference{Name: "Maria Silva"},
		PricePerPerson: decimal.NewFromInt(100),
		Headcount:      50,
		EventDate:      time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSync)
	suite.Empty(suite.store.ListBudgets(), "the budget insert is rolled back")
	suite.Len(suite.store.ListClients(), 1, "the client registration is its own committed operation")
}

func (suite *BudgetServiceTestSuite) TestAcceptBudget_ConvertsToEvent() {
	budget := suite.createPendingBudget()
	ctx := context.Background()

	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()
	suite.mockClientRepo.On("UpdateClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	event, err := suite.service.AcceptBudget(ctx, budget.BudgetID)

	suite.Require().NoError(err)
	suite.Require().NotNil(event)
	suite.Equal(domain.EventConfirmed, event.Status)
	suite.Equal("Event for Maria Silva", event.Name)
	suite.Equal(budget.ClientID, event.ClientID)
	suite.Equal(budget.EventDate, event.Date)
	suite.Equal(budget.Headcount, event.Headcount)
	suite.Len(event.Staff, 1, "staffing is snapshotted into the event")

	// Exactly one seed transaction funding the full quoted value.
	suite.Require().Len(event.Transactions, 1)
	seed := event.Transactions[0]
	suite.Equal(domain.Funding, seed.Kind)
	suite.Equal(domain.SourceClient, seed.Source)
	suite.True(decimal.NewFromInt(5000).Equal(seed.Amount))
	suite.Equal(event.EventID, seed.EventID)

	// The budget is terminal and linked to the event it produced.
	updated, ok := suite.store.GetBudget(budget.BudgetID)
	suite.Require().True(ok)
	suite.Equal(domain.BudgetAccepted, updated.Status)
	suite.Equal(event.EventID, updated.EventID)
	suite.True(updated.Terminal())

	// The client now references the new event.
	client, ok := suite.store.GetClient(budget.ClientID)
	suite.Require().True(ok)
	suite.Equal([]string{event.EventID}, client.EventIDs)

	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestAcceptBudget_TwiceFails() {
	budget := suite.createPendingBudget()
	ctx := context.Background()

	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()
	suite.mockClientRepo.On("UpdateClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	_, err := suite.service.AcceptBudget(ctx, budget.BudgetID)
	suite.Require().NoError(err)

	_, err = suite.service.AcceptBudget(ctx, budget.BudgetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Len(suite.store.ListEvents(), 1, "exactly one event per budget, ever")
}

func (suite *BudgetServiceTestSuite) TestAcceptBudget_AfterRejectFails() {
	budget := suite.createPendingBudget()
	ctx := context.Background()

	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()
	rejected, err := suite.service.RejectBudget(ctx, budget.BudgetID)
	suite.Require().NoError(err)
	suite.Equal(domain.BudgetRejected, rejected.Status)

	_, err = suite.service.AcceptBudget(ctx, budget.BudgetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Empty(suite.store.ListEvents(), "a rejected budget never produces an event")
}

func (suite *BudgetServiceTestSuite) TestAcceptBudget_SaveEventErrorRollsBackEverything() {
	budget := suite.createPendingBudget()
	ctx := context.Background()

	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).
		Return(fmt.Errorf("backend unreachable")).Once()

	_, err := suite.service.AcceptBudget(ctx, budget.BudgetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSync)

	suite.Empty(suite.store.ListEvents(), "the optimistic event insert is rolled back")
	restored, ok := suite.store.GetBudget(budget.BudgetID)
	suite.Require().True(ok)
	suite.Equal(domain.BudgetPending, restored.Status, "the budget can be accepted again later")
	suite.Empty(restored.EventID)
	client, ok := suite.store.GetClient(budget.ClientID)
	suite.Require().True(ok)
	suite.Empty(client.EventIDs, "the back-reference is rolled back")
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "UpdateBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestAcceptBudget_UpdateBudgetErrorRollsBackEverything() {
	budget := suite.createPendingBudget()
	ctx := context.Background()

	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.AnythingOfType("domain.Budget")).
		Return(fmt.Errorf("backend unreachable")).Once()

	_, err := suite.service.AcceptBudget(ctx, budget.BudgetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSync)
	suite.Empty(suite.store.ListEvents())

	restored, _ := suite.store.GetBudget(budget.BudgetID)
	suite.Equal(domain.BudgetPending, restored.Status)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_TerminalFails() {
	budget := suite.createPendingBudget()
	ctx := context.Background()

	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()
	suite.mockClientRepo.On("UpdateClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	_, err := suite.service.AcceptBudget(ctx, budget.BudgetID)
	suite.Require().NoError(err)

	newNotes := "updated notes"
	_, err = suite.service.UpdateBudget(ctx, budget.BudgetID, dto.UpdateBudgetRequest{Notes: &newNotes})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_MergesFields() {
	budget := suite.createPendingBudget()
	ctx := context.Background()

	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	headcount := 80
	updated, err := suite.service.UpdateBudget(ctx, budget.BudgetID, dto.UpdateBudgetRequest{
		Headcount: &headcount,
	})

	suite.Require().NoError(err)
	suite.Equal(80, updated.Headcount)
	suite.True(decimal.NewFromInt(100).Equal(updated.PricePerPerson), "untouched fields survive the merge")
	suite.True(decimal.NewFromInt(8000).Equal(updated.TotalValue()))
}

func (suite *BudgetServiceTestSuite) TestListBudgets_FilterByStatus() {
	budget := suite.createPendingBudget()
	ctx := context.Background()

	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	second, err := suite.service.CreateBudget(ctx, dto.CreateBudgetRequest{
		Client:         dto.ClientReference{Name: "Maria Silva"},
		PricePerPerson: decimal.NewFromInt(70),
		Headcount:      30,
		EventDate:      time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)
	_, err = suite.service.RejectBudget(ctx, second.BudgetID)
	suite.Require().NoError(err)

	pending, err := suite.service.ListBudgets(ctx, dto.ListBudgetsParams{Limit: 20, Status: string(domain.BudgetPending)})
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(budget.BudgetID, pending[0].BudgetID)

	rejected, err := suite.service.ListBudgets(ctx, dto.ListBudgetsParams{Limit: 20, Status: string(domain.BudgetRejected)})
	suite.Require().NoError(err)
	suite.Require().Len(rejected, 1)
	suite.Equal(second.BudgetID, rejected[0].BudgetID)

	all, err := suite.service.ListBudgets(ctx, dto.ListBudgetsParams{Limit: 20})
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
