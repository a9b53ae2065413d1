package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"okada/internal/adapters/out/postgres/historyrepo"
	"okada/internal/adapters/out/postgres/pgtest"
	"okada/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

var placedAt = time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)

type HistoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg       *pgtest.Database
	statuses *historyrepo.GormStatusHistoryRepository
	edits    *historyrepo.GormEditHistoryRepository
	order    *order.Order
	initial  order.StatusTransition
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.statuses = historyrepo.NewGormStatusHistoryRepository(pg.DB)
	suite.edits = historyrepo.NewGormEditHistoryRepository(pg.DB)
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	o, initial, err := pgtest.NewOrder(11, "Marché Mokolo, Yaoundé", placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.pg.SeedOrder(o))
	suite.order = o
	suite.initial = initial
}

func (suite *HistoryRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestStatusHistory_AppendAndListAscending() {
	ctx := context.Background()
	admin := order.Actor{Type: order.ActorAdmin, ID: 2}
	riderID := int64(8)

	confirmed, err := suite.order.ChangeStatus(order.Confirmed, nil, admin, "paid by MoMo", placedAt.Add(time.Minute))
	suite.Require().NoError(err)
	assigned, err := suite.order.ChangeStatus(order.RiderAssigned, &riderID, admin, "", placedAt.Add(2*time.Minute))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.statuses.Append(ctx, assigned))
	suite.Require().NoError(suite.statuses.Append(ctx, suite.initial, confirmed))

	history, err := suite.statuses.ListByOrder(ctx, 11)
	suite.Require().NoError(err)
	suite.Require().Len(history, 3)

	suite.Nil(history[0].PreviousStatus())
	suite.Equal(order.Pending, history[0].NewStatus())
	suite.Equal(order.ActorSystem, history[0].Actor().Type)

	suite.Equal(order.Confirmed, history[1].NewStatus())
	suite.Equal("paid by MoMo", history[1].Notes())
	suite.Equal(admin, history[1].Actor())

	suite.Equal(order.RiderAssigned, history[2].NewStatus())
	suite.Equal(riderID, *history[2].RiderID())
	suite.True(history[2].ID().IsEqual(assigned.ID()))
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestStatusHistory_EmptyAppendIsNoop() {
	suite.Require().NoError(suite.statuses.Append(context.Background()))

	history, err := suite.statuses.ListByOrder(context.Background(), 11)
	suite.Require().NoError(err)
	suite.Empty(history)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestEditHistory_AppendAndList() {
	ctx := context.Background()
	admin := order.Actor{Type: order.ActorAdmin, ID: 2}
	address, notes := "Carrefour Warda, Yaoundé", "call first"

	edits, err := suite.order.Edit(order.Changes{DeliveryAddress: &address, Notes: &notes}, admin, "wrong pin", placedAt.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.edits.Append(ctx, edits...))

	history, err := suite.edits.ListByOrder(ctx, 11)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)

	byField := map[order.Field]order.FieldEdit{}
	for _, e := range history {
		byField[e.Field()] = e
	}
	suite.Equal("Marché Mokolo, Yaoundé", *byField[order.FieldDeliveryAddress].OldValue())
	suite.Equal(address, *byField[order.FieldDeliveryAddress].NewValue())
	suite.Nil(byField[order.FieldNotes].OldValue())
	suite.Equal("wrong pin", byField[order.FieldNotes].Reason())
	suite.Equal(admin, byField[order.FieldNotes].Actor())
}

func TestHistoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryRepositoryIntegrationTestSuite))
}
