package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	postgres_adapter "freightmatch/internal/adapters/out/postgres"
	"freightmatch/internal/adapters/out/postgres/loadrepo"
	"freightmatch/internal/adapters/out/postgres/matchrepo"
	"freightmatch/internal/adapters/out/postgres/shipmentrepo"
	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/core/ports"
	"freightmatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&loadrepo.LoadDTO{},
		&matchrepo.MatchDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingEventDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE loads, matches, shipments, tracking_events").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.LoadRepository(), "First instance should provide load repository")
	suite.NotNil(uow1.MatchRepository(), "First instance should provide match repository")
	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow2.LoadRepository(), "Second instance should provide load repository")
	suite.NotNil(uow2.MatchRepository(), "Second instance should provide match repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test load
	testLoad := createTestLoad()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add load within transaction
	err = uow.LoadRepository().Add(ctx, testLoad)
	suite.Require().NoError(err)

	// Verify load exists within transaction
	retrievedLoad, err := uow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)
	suite.Equal(testLoad.ID(), retrievedLoad.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify load persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedLoad, err = newUow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)
	suite.Equal(testLoad.ID(), retrievedLoad.ID())
	suite.Equal(testLoad.Reference(), retrievedLoad.Reference())
}

// TestUnitOfWork_AcceptanceCascade runs the highest-stakes multi-repository
// transaction in the system: a carrier accepts an offer, the sibling match is
// cancelled, a shipment is created, and the load transitions, all atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AcceptanceCascade() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Seed a matched load with two competing matches
	testLoad := createTestLoad()
	winner := createTestMatch(testLoad.ID())
	sibling := createTestMatch(testLoad.ID())

	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.LoadRepository().Add(ctx, testLoad))
	suite.Require().NoError(seedUow.MatchRepository().Add(ctx, winner))
	suite.Require().NoError(seedUow.MatchRepository().Add(ctx, sibling))

	suite.Require().NoError(winner.MakeOffer(1900, now))
	suite.Require().NoError(seedUow.MatchRepository().Update(ctx, winner))
	suite.Require().NoError(testLoad.MarkMatched())
	suite.Require().NoError(seedUow.LoadRepository().Update(ctx, testLoad))

	// Run the cascade inside one transaction
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	lockedLoad, err := uow.LoadRepository().GetForUpdate(ctx, testLoad.ID())
	suite.Require().NoError(err)

	acceptedMatch, err := uow.MatchRepository().Get(ctx, winner.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(acceptedMatch.Accept(1900, now))
	suite.Require().NoError(uow.MatchRepository().Update(ctx, acceptedMatch))

	siblings, err := uow.MatchRepository().GetActiveByLoad(ctx, testLoad.ID())
	suite.Require().NoError(err)
	for _, m := range siblings {
		if m.ID().IsEqual(acceptedMatch.ID()) {
			continue
		}
		suite.Require().NoError(m.Cancel(now))
		suite.Require().NoError(uow.MatchRepository().Update(ctx, m))
	}

	newShipment, err := shipment.NewShipment(shipment.Params{
		ID:                  kernel.NewUUID(),
		MatchID:             acceptedMatch.ID(),
		LoadID:              lockedLoad.ID(),
		ScheduledPickupAt:   lockedLoad.Pickup().Date(),
		ScheduledDeliveryAt: lockedLoad.Delivery().Date(),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, newShipment))

	suite.Require().NoError(lockedLoad.Accept())
	suite.Require().NoError(uow.LoadRepository().Update(ctx, lockedLoad))

	suite.Require().NoError(uow.Commit(ctx))

	// Verify the cascade persisted as one unit
	verifyUow := suite.factory.Create()

	persistedLoad, err := verifyUow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)
	suite.Equal(load.Accepted, persistedLoad.Status())

	persistedWinner, err := verifyUow.MatchRepository().Get(ctx, winner.ID())
	suite.Require().NoError(err)
	suite.Equal(match.Accepted, persistedWinner.Status())
	suite.InDelta(1900, persistedWinner.RateAccepted(), 0.001)

	persistedSibling, err := verifyUow.MatchRepository().Get(ctx, sibling.ID())
	suite.Require().NoError(err)
	suite.Equal(match.Cancelled, persistedSibling.Status())

	persistedShipment, err := verifyUow.ShipmentRepository().GetByMatch(ctx, winner.ID())
	suite.Require().NoError(err)
	suite.Equal(testLoad.ID(), persistedShipment.LoadID())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testLoad := createTestLoad()
	testMatch := createTestMatch(testLoad.ID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.LoadRepository().Add(ctx, testLoad)
	suite.Require().NoError(err)

	err = uow.MatchRepository().Add(ctx, testMatch)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)

	_, err = uow.MatchRepository().Get(ctx, testMatch.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().Error(err, "Load should not exist after rollback")

	_, err = newUow.MatchRepository().Get(ctx, testMatch.ID())
	suite.Require().Error(err, "Match should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test loads
	load1 := createTestLoad()
	load2 := createTestLoad()

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different loads in each transaction
	err = uow1.LoadRepository().Add(ctx, load1)
	suite.Require().NoError(err)

	err = uow2.LoadRepository().Add(ctx, load2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.LoadRepository().Get(ctx, load1.ID())
	suite.Require().NoError(err, "UOW1 should see load1")

	_, err = uow1.LoadRepository().Get(ctx, load2.ID())
	suite.Require().Error(err, "UOW1 should not see load2")

	_, err = uow2.LoadRepository().Get(ctx, load2.ID())
	suite.Require().NoError(err, "UOW2 should see load2")

	_, err = uow2.LoadRepository().Get(ctx, load1.ID())
	suite.Require().Error(err, "UOW2 should not see load1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only load1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.LoadRepository().Get(ctx, load1.ID())
	suite.Require().NoError(err, "Load1 should persist after commit")

	_, err = newUow.LoadRepository().Get(ctx, load2.ID())
	suite.Require().Error(err, "Load2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test load
	testLoad := createTestLoad()

	// Add load without beginning transaction (should auto-commit)
	err := uow.LoadRepository().Add(ctx, testLoad)
	suite.Require().NoError(err)

	// Verify load persists immediately
	retrievedLoad, err := uow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)
	suite.Equal(testLoad.ID(), retrievedLoad.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedLoad, err = newUow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)
	suite.Equal(testLoad.ID(), retrievedLoad.ID())
}

// TestUnitOfWork_TrackingHistory verifies the shipment history grows within
// a transaction and survives the commit in occurred-at order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TrackingHistory() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	// Seed an accepted engagement
	testLoad := createTestLoad()
	testMatch := createTestMatch(testLoad.ID())
	testShipment := createTestShipment(testMatch.ID(), testLoad.ID())

	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.LoadRepository().Add(ctx, testLoad))
	suite.Require().NoError(seedUow.MatchRepository().Add(ctx, testMatch))
	suite.Require().NoError(seedUow.ShipmentRepository().Add(ctx, testShipment))

	// Append a pickup milestone and drive the shipment inside one transaction
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	pickupEvent, err := shipment.NewTrackingEvent(shipment.TrackingEventParams{
		ID:         kernel.NewUUID(),
		ShipmentID: testShipment.ID(),
		EventType:  shipment.EventTypePickupCompleted,
		Source:     "driver_app",
		OccurredAt: now,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ShipmentRepository().AppendEvent(ctx, pickupEvent))

	lockedShipment, err := uow.ShipmentRepository().GetForUpdate(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(lockedShipment.PickUp(now))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, lockedShipment))

	suite.Require().NoError(uow.Commit(ctx))

	// Verify the history and the lifecycle transition persisted together
	verifyUow := suite.factory.Create()

	events, err := verifyUow.ShipmentRepository().GetEvents(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(shipment.EventTypePickupCompleted, events[0].EventType())

	persistedShipment, err := verifyUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.NotNil(persistedShipment.ActualPickupAt())
}

// TestUnitOfWork_ConcurrentAcceptance races two acceptances on the same load
// through the real command handler and verifies the load's row lock admits
// exactly one cascade. The loser serializes behind the winner's transaction,
// observes the committed state, and backs off with a conflict.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentAcceptance() {
	ctx := context.Background()
	now := time.Now().UTC()

	testLoad := createTestLoad()
	first := createTestMatch(testLoad.ID())
	second := createTestMatch(testLoad.ID())

	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.LoadRepository().Add(ctx, testLoad))
	suite.Require().NoError(seedUow.MatchRepository().Add(ctx, first))
	suite.Require().NoError(seedUow.MatchRepository().Add(ctx, second))

	handler := commands.NewRespondToOfferCommandHandler(
		commandUoWFactory{factory: suite.factory},
		discardPublisher{},
	)

	results := make(chan error, 2)
	for _, matchID := range []kernel.UUID{first.ID(), second.ID()} {
		go func(id kernel.UUID) {
			cmd, err := commands.NewRespondToOfferCommand(id, commands.DecisionAccept, 0, "", now)
			if err != nil {
				results <- err
				return
			}
			results <- handler.Handle(ctx, cmd)
		}(matchID)
	}

	outcomes := []error{<-results, <-results}

	var conflicts, accepts int
	for _, err := range outcomes {
		switch {
		case err == nil:
			accepts++
		case errors.Is(err, errs.ErrConflict):
			conflicts++
		default:
			suite.Require().NoError(err, "acceptance must succeed or lose the race cleanly")
		}
	}
	suite.Equal(1, accepts, "exactly one acceptance must win")
	suite.Equal(1, conflicts, "the race loser must observe a conflict")

	// The committed state reflects a single complete cascade
	verifyUow := suite.factory.Create()

	persistedLoad, err := verifyUow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)
	suite.Equal(load.Accepted, persistedLoad.Status())

	matches, err := verifyUow.MatchRepository().GetActiveByLoad(ctx, testLoad.ID())
	suite.Require().NoError(err)
	suite.Require().Len(matches, 1, "only the winning match stays active")
	suite.Equal(match.Accepted, matches[0].Status())

	persistedShipment, err := verifyUow.ShipmentRepository().GetByMatch(ctx, matches[0].ID())
	suite.Require().NoError(err)
	suite.Equal(testLoad.ID(), persistedShipment.LoadID())
}

// commandUoWFactory exposes the gorm unit of work factory through the
// command-layer factory interface.
type commandUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f commandUoWFactory) Create() commands.UoW {
	return f.factory.Create()
}

// discardPublisher drops events; delivery is not under test here.
type discardPublisher struct{}

func (discardPublisher) Publish(_ context.Context, _ ...ports.DomainEvent) error {
	return nil
}

// createTestLoad creates a valid posted load for testing purposes.
func createTestLoad() *load.Load {
	now := time.Now().UTC()

	pickupPoint, _ := kernel.NewGeoPoint(33.7490, -84.3880)
	deliveryPoint, _ := kernel.NewGeoPoint(32.0809, -81.0912)

	pickup, _ := load.NewStop(pickupPoint, "GA", now.Add(24*time.Hour))
	delivery, _ := load.NewStop(deliveryPoint, "GA", now.Add(48*time.Hour))

	id := kernel.NewUUID()
	testLoad, _ := load.NewLoad(load.Params{
		ID:            id,
		Reference:     fmt.Sprintf("LD-IT-%s", id.String()[:8]),
		EquipmentType: kernel.EquipmentDryVan,
		WeightLbs:     42000,
		Pickup:        pickup,
		Delivery:      delivery,
		RateQuoted:    1850,
		ExpiresAt:     now.Add(12 * time.Hour),
	})
	return testLoad
}

// createTestMatch creates a valid pending match for the given load.
func createTestMatch(loadID kernel.UUID) *match.Match {
	testMatch, _ := match.NewMatch(match.Params{
		ID:             kernel.NewUUID(),
		LoadID:         loadID,
		CarrierID:      kernel.NewUUID(),
		Score:          72.5,
		DeadheadMiles:  48,
		FuelEstimate:   160,
		MarginEstimate: 410,
		CreatedAt:      time.Now().UTC(),
	})
	return testMatch
}

// createTestShipment creates a valid shipment awaiting pickup.
func createTestShipment(matchID, loadID kernel.UUID) *shipment.Shipment {
	now := time.Now().UTC()
	testShipment, _ := shipment.NewShipment(shipment.Params{
		ID:                  kernel.NewUUID(),
		MatchID:             matchID,
		LoadID:              loadID,
		ScheduledPickupAt:   now.Add(24 * time.Hour),
		ScheduledDeliveryAt: now.Add(48 * time.Hour),
	})
	return testShipment
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
