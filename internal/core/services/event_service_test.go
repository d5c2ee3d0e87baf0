package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/core/services"
	"github.com/papillon-eventos/event_ledger_app/internal/dto"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EventServiceTestSuite struct {
	suite.Suite
	store          *store.Store
	mockEventRepo  *MockEventRepository
	mockClientRepo *MockClientRepository
	service        portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.store = store.New()
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockClientRepo = new(MockClientRepository)
	clientSvc := services.NewClientService(suite.store, suite.mockClientRepo)
	suite.service = services.NewEventService(suite.store, suite.mockEventRepo, suite.mockClientRepo, clientSvc)
}

// seedEvent places an event directly into the local snapshot with explicit
// dates so ordering assertions are deterministic.
func (suite *EventServiceTestSuite) seedEvent(id string, date time.Time, createdAt time.Time) {
	event := domain.Event{
		EventID: id,
		Name:    "Event " + id,
		Date:    date,
		Status:  domain.EventConfirmed,
	}
	event.CreatedAt = createdAt
	event.LastUpdatedAt = createdAt
	suite.store.PutEvent(event)
}

// --- Test Cases ---

func (suite *EventServiceTestSuite) TestCreateEvent_RegistersClientWithBackReference() {
	ctx := context.Background()
	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()

	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		Name:   "Corporate dinner",
		Date:   time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Client: dto.ClientReference{Name: "Maria Silva"},
	})

	suite.Require().NoError(err)
	suite.Equal(domain.EventPending, event.Status, "status defaults to pending")
	suite.Empty(event.Transactions, "directly created events start with an empty ledger")

	client, ok := suite.store.GetClient(event.ClientID)
	suite.Require().True(ok)
	suite.Equal([]string{event.EventID}, client.EventIDs)
}

func (suite *EventServiceTestSuite) TestCreateEvent_InvalidStatusFails() {
	_, err := suite.service.CreateEvent(context.Background(), dto.CreateEventRequest{
		Name:   "Corporate dinner",
		Date:   time.Now(),
		Client: dto.ClientReference{Name: "Maria Silva"},
		Status: "MAYBE",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EventServiceTestSuite) TestUpdateEventStatus_SameStatusIsNoOp() {
	suite.seedEvent("e1", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), time.Now())
	ctx := context.Background()

	event, err := suite.service.UpdateEventStatus(ctx, "e1", domain.EventConfirmed)

	suite.Require().NoError(err)
	suite.Equal(domain.EventConfirmed, event.Status)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "UpdateEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestDeleteEvent_DetachesClient() {
	ctx := context.Background()
	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()
	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		Name:   "Corporate dinner",
		Date:   time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Client: dto.ClientReference{Name: "Maria Silva"},
	})
	suite.Require().NoError(err)

	suite.mockEventRepo.On("DeleteEvent", ctx, event.EventID).Return(nil).Once()
	suite.mockClientRepo.On("UpdateClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	err = suite.service.DeleteEvent(ctx, event.EventID)

	suite.Require().NoError(err)
	_, ok := suite.store.GetEvent(event.EventID)
	suite.False(ok)

	client, ok := suite.store.GetClient(event.ClientID)
	suite.Require().True(ok, "the client itself is never deleted with the event")
	suite.Empty(client.EventIDs)
}

func (suite *EventServiceTestSuite) TestDeleteEvent_RepoErrorRestoresBoth() {
	ctx := context.Background()
	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()
	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		Name:   "Corporate dinner",
		Date:   time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Client: dto.ClientReference{Name: "Maria Silva"},
	})
	suite.Require().NoError(err)

	suite.mockEventRepo.On("DeleteEvent", ctx, event.EventID).
		Return(fmt.Errorf("backend unreachable")).Once()

	err = suite.service.DeleteEvent(ctx, event.EventID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSync)
	_, ok := suite.store.GetEvent(event.EventID)
	suite.True(ok, "the removal is rolled back")
	client, _ := suite.store.GetClient(event.ClientID)
	suite.Equal([]string{event.EventID}, client.EventIDs, "the back-reference is restored")
}

func (suite *EventServiceTestSuite) TestDeleteEvent_RepoErrorKeepsListingOrder() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedEvent("first", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), base)
	suite.seedEvent("second", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), base.Add(time.Minute))
	suite.seedEvent("third", time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), base.Add(2*time.Minute))

	suite.mockEventRepo.On("DeleteEvent", ctx, "second").
		Return(fmt.Errorf("backend unreachable")).Once()

	err := suite.service.DeleteEvent(ctx, "second")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSync)
	events := suite.store.ListEvents()
	suite.Require().Len(events, 3)
	suite.Equal("first", events[0].EventID)
	suite.Equal("second", events[1].EventID, "a rolled-back delete keeps the event at its original position")
	suite.Equal("third", events[2].EventID)
}

func (suite *EventServiceTestSuite) TestListEvents_NewestDateFirstWithToken() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedEvent("oldest", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), base)
	suite.seedEvent("newest", time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), base.Add(time.Minute))
	suite.seedEvent("middle", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), base.Add(2*time.Minute))

	page, token, err := suite.service.ListEvents(ctx, 2, "")

	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Equal("newest", page[0].EventID)
	suite.Equal("middle", page[1].EventID)
	suite.Require().NotEmpty(token, "more events remain")

	rest, token, err := suite.service.ListEvents(ctx, 2, token)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.Equal("oldest", rest[0].EventID)
	suite.Empty(token, "last page carries no token")
}

func (suite *EventServiceTestSuite) TestListEvents_SameDateBreaksTiesByCreation() {
	ctx := context.Background()
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	suite.seedEvent("first-created", date, base)
	suite.seedEvent("last-created", date, base.Add(time.Hour))

	page, _, err := suite.service.ListEvents(ctx, 10, "")

	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Equal("last-created", page[0].EventID)
	suite.Equal("first-created", page[1].EventID)
}

func (suite *EventServiceTestSuite) TestListEvents_BadTokenFails() {
	_, _, err := suite.service.ListEvents(context.Background(), 10, "not-a-token")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EventServiceTestSuite) TestListEventsByClient() {
	ctx := context.Background()
	suite.store.PutClient(domain.Client{ClientID: "c1", Name: "Maria Silva", EventIDs: []string{"e1"}})
	suite.seedEvent("e1", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), time.Now())
	suite.seedEvent("e2", time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC), time.Now())

	event, ok := suite.store.GetEvent("e1")
	suite.Require().True(ok)
	event.ClientID = "c1"
	suite.store.PutEvent(event)

	events, err := suite.service.ListEventsByClient(ctx, "c1")
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal("e1", events[0].EventID)

	_, err = suite.service.ListEventsByClient(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
