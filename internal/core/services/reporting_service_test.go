package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/papillon-eventos/event_ledger_app/internal/apperrors"
	"github.com/papillon-eventos/event_ledger_app/internal/core/domain"
	portssvc "github.com/papillon-eventos/event_ledger_app/internal/core/ports/services"
	"github.com/papillon-eventos/event_ledger_app/internal/core/services"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	store   *store.Store
	service portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.store = store.New()
	suite.service = services.NewReportingService(suite.store)
}

func (suite *ReportingServiceTestSuite) putEventWithTxns(id string, txns ...domain.Transaction) {
	suite.store.PutEvent(domain.Event{
		EventID:      id,
		Name:         "Event " + id,
		Date:         time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Status:       domain.EventConfirmed,
		Transactions: txns,
	})
}

func txn(kind domain.TransactionKind, source, destination string, amount int64) domain.Transaction {
	return domain.Transaction{
		Kind:        kind,
		Source:      source,
		Destination: destination,
		Description: "entry",
		Amount:      decimal.NewFromInt(amount),
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestSummary_AcrossEvents() {
	suite.putEventWithTxns("e1",
		txn(domain.Funding, "client", "", 5000),
		txn(domain.Expense, "client", "butcher", 1200),
	)
	suite.putEventWithTxns("e2",
		txn(domain.Funding, "client", "", 3000),
	)
	suite.putEventWithTxns("e3") // no transactions yet

	balance, count, err := suite.service.Summary(context.Background())

	suite.Require().NoError(err)
	suite.Equal(3, count)
	suite.True(decimal.NewFromInt(8000).Equal(balance.Funded))
	suite.True(decimal.NewFromInt(1200).Equal(balance.Spent))
	suite.True(decimal.NewFromInt(6800).Equal(balance.Net))
}

func (suite *ReportingServiceTestSuite) TestSummary_EmptySnapshot() {
	balance, count, err := suite.service.Summary(context.Background())

	suite.Require().NoError(err)
	suite.Zero(count)
	suite.True(balance.Funded.IsZero())
	suite.True(balance.Net.IsZero())
}

func (suite *ReportingServiceTestSuite) TestExpensesByDestination_FallsBackToDescription() {
	undirected := txn(domain.Expense, "client", "", 250)
	undirected.Description = "misc supplies"
	suite.putEventWithTxns("e1",
		txn(domain.Funding, "client", "", 5000),
		txn(domain.Expense, "client", "butcher", 600),
		txn(domain.Expense, "client", "butcher", 150),
		undirected,
	)

	shares, err := suite.service.ExpensesByDestination(context.Background(), "e1")

	suite.Require().NoError(err)
	suite.Require().Len(shares, 2)
	suite.Equal("butcher", shares[0].Key)
	suite.True(decimal.NewFromInt(750).Equal(shares[0].Total))
	suite.Equal("misc supplies", shares[1].Key)
	suite.True(decimal.NewFromInt(25).Equal(shares[1].Percentage))
}

func (suite *ReportingServiceTestSuite) TestFundingBySource() {
	suite.putEventWithTxns("e1",
		txn(domain.Funding, "client", "", 7500),
		txn(domain.Funding, "sponsor", "", 2500),
		txn(domain.Expense, "client", "butcher", 100),
	)

	shares, err := suite.service.FundingBySource(context.Background(), "e1")

	suite.Require().NoError(err)
	suite.Require().Len(shares, 2)
	suite.Equal("client", shares[0].Key)
	suite.True(decimal.NewFromInt(75).Equal(shares[0].Percentage))
	suite.Equal("sponsor", shares[1].Key)
	suite.True(decimal.NewFromInt(25).Equal(shares[1].Percentage))
}

func (suite *ReportingServiceTestSuite) TestGrouping_UnknownEventFails() {
	_, err := suite.service.ExpensesByDestination(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.FundingBySource(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
