package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"freightmatch/internal/adapters/out/postgres/loadrepo"
	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveLoadsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveLoadsQueryHandler
	loadRepo  *loadrepo.GormLoadRepository
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&loadrepo.LoadDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveLoadsQueryHandler(db)
	suite.loadRepo = loadrepo.NewGormLoadRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE loads CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveLoadsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) TestHandle_WithOnlyTerminalLoads_ReturnsEmptySlice() {
	pickupAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	suite.seedLoad("LD-2025-00001", load.Delivered, pickupAt)
	suite.seedLoad("LD-2025-00002", load.Cancelled, pickupAt)
	suite.seedLoad("LD-2025-00003", load.Expired, pickupAt)

	query := queries.NewGetActiveLoadsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) TestHandle_WithMixedStatuses_ReturnsOnlyActive() {
	pickupAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	active := []*load.Load{
		suite.seedLoad("LD-2025-00010", load.Posted, pickupAt),
		suite.seedLoad("LD-2025-00011", load.Matched, pickupAt),
		suite.seedLoad("LD-2025-00012", load.Accepted, pickupAt),
		suite.seedLoad("LD-2025-00013", load.PickedUp, pickupAt),
		suite.seedLoad("LD-2025-00014", load.InTransit, pickupAt),
	}
	terminal := []*load.Load{
		suite.seedLoad("LD-2025-00015", load.Delivered, pickupAt),
		suite.seedLoad("LD-2025-00016", load.Cancelled, pickupAt),
		suite.seedLoad("LD-2025-00017", load.Expired, pickupAt),
	}

	query := queries.NewGetActiveLoadsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, len(active))

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}

	for _, l := range active {
		suite.True(resultIDs[l.ID()], "Load %s should be on the board", l.Reference())
	}
	for _, l := range terminal {
		suite.False(resultIDs[l.ID()], "Terminal load %s should not be on the board", l.Reference())
	}
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) TestHandle_BoardSortedByPickupDateThenReference() {
	day1 := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)

	// Seeded out of order on purpose
	suite.seedLoad("LD-2025-00022", load.Posted, day2)
	suite.seedLoad("LD-2025-00021", load.Posted, day2)
	suite.seedLoad("LD-2025-00020", load.Posted, day1)

	query := queries.NewGetActiveLoadsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("LD-2025-00020", result[0].Reference)
	suite.Equal("LD-2025-00021", result[1].Reference)
	suite.Equal("LD-2025-00022", result[2].Reference)
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) TestHandle_MapsLaneFields() {
	pickupAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	seeded := suite.seedLoad("LD-2025-00417", load.Posted, pickupAt)

	query := queries.NewGetActiveLoadsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	board := result[0]
	suite.Equal(seeded.ID(), board.ID)
	suite.Equal("LD-2025-00417", board.Reference)
	suite.Equal(kernel.DryVan, board.EquipmentType)
	suite.Equal("GA", board.OriginState)
	suite.True(board.PickupAt.Equal(pickupAt), "pickup date should survive the round trip")
	suite.Equal("FL", board.DestState)
	suite.True(board.DeliveryAt.Equal(pickupAt.Add(48*time.Hour)), "delivery date should survive the round trip")
	suite.InDelta(2750.0, board.RateTotal, 0.001)
	suite.Equal("posted", board.Status)
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveLoadsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveLoadsQuery constructor")
}

func (suite *GetActiveLoadsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	pickupAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	for i := range 50 {
		suite.seedLoad(fmt.Sprintf("LD-2025-%05d", i+100), load.Posted, pickupAt)
	}

	query := queries.NewGetActiveLoadsQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

// seedLoad persists an Atlanta to Miami dry van load in the given status.
func (suite *GetActiveLoadsQueryHandlerTestSuite) seedLoad(
	reference string, status load.Status, pickupAt time.Time,
) *load.Load {
	origin, err := kernel.NewGeoPoint(33.749, -84.388)
	suite.Require().NoError(err)
	dest, err := kernel.NewGeoPoint(25.7617, -80.1918)
	suite.Require().NoError(err)

	pickup, err := load.NewStop(origin, "GA", pickupAt)
	suite.Require().NoError(err)
	delivery, err := load.NewStop(dest, "FL", pickupAt.Add(48*time.Hour))
	suite.Require().NoError(err)

	seeded, err := load.RestoreLoad(load.Params{
		ID:            kernel.NewUUID(),
		Reference:     reference,
		EquipmentType: kernel.DryVan,
		WeightLbs:     25000,
		Pickup:        pickup,
		Delivery:      delivery,
		RateQuoted:    2400,
		RateTotal:     2750,
		ExpiresAt:     pickupAt.Add(-24 * time.Hour),
	}, status)
	suite.Require().NoError(err)

	err = suite.loadRepo.Add(context.Background(), seeded)
	suite.Require().NoError(err)

	return seeded
}

func TestGetActiveLoadsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveLoadsQueryHandlerTestSuite))
}

// mockAggregateTracker satisfies the repositories' tracker dependency for
// test purposes. It's a no-op since query tests don't need change tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
