package queries_test

import (
	"context"
	"testing"
	"time"

	"freightmatch/internal/adapters/out/postgres/matchrepo"
	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetLoadMatchesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetLoadMatchesQueryHandler
	matchRepo *matchrepo.GormMatchRepository
}

func (suite *GetLoadMatchesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&matchrepo.MatchDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetLoadMatchesQueryHandler(db)
	suite.matchRepo = matchrepo.NewGormMatchRepository(db, &mockAggregateTracker{})
}

func (suite *GetLoadMatchesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetLoadMatchesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE matches CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetLoadMatchesQueryHandlerTestSuite) TestHandle_UnknownLoad_ReturnsEmptySlice() {
	query, err := queries.NewGetLoadMatchesQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetLoadMatchesQueryHandlerTestSuite) TestHandle_RanksByScoreThenDeadheadThenCarrier() {
	loadID := kernel.NewUUID()

	// Two carriers whose IDs are ordered so the final tiebreak is decidable.
	carrierLow := kernel.NewUUID()
	carrierHigh := kernel.NewUUID()
	if carrierLow.String() > carrierHigh.String() {
		carrierLow, carrierHigh = carrierHigh, carrierLow
	}

	// Seeded worst-first so the ranking has to reorder them.
	tieOnEverythingHigh := suite.seedMatch(loadID, carrierHigh, 80, 120)
	tieOnEverythingLow := suite.seedMatch(loadID, carrierLow, 80, 120)
	shorterDeadhead := suite.seedMatch(loadID, kernel.NewUUID(), 80, 40)
	bestScore := suite.seedMatch(loadID, kernel.NewUUID(), 90, 250)

	query, err := queries.NewGetLoadMatchesQuery(loadID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 4)
	suite.Equal(bestScore.ID(), result[0].ID, "Highest score should rank first")
	suite.Equal(shorterDeadhead.ID(), result[1].ID, "Shorter deadhead should break the score tie")
	suite.Equal(tieOnEverythingLow.ID(), result[2].ID, "Carrier ID should break the full tie")
	suite.Equal(tieOnEverythingHigh.ID(), result[3].ID)
}

func (suite *GetLoadMatchesQueryHandlerTestSuite) TestHandle_OtherLoadsExcluded() {
	boardLoad := kernel.NewUUID()
	otherLoad := kernel.NewUUID()

	onBoard := suite.seedMatch(boardLoad, kernel.NewUUID(), 75, 60)
	suite.seedMatch(otherLoad, kernel.NewUUID(), 95, 10)

	query, err := queries.NewGetLoadMatchesQuery(boardLoad)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(onBoard.ID(), result[0].ID)
}

func (suite *GetLoadMatchesQueryHandlerTestSuite) TestHandle_MapsScoringAndOfferFields() {
	loadID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	createdAt := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	matchedAt := createdAt.Add(5 * time.Minute)
	acceptedAt := createdAt.Add(30 * time.Minute)

	accepted, err := match.RestoreMatch(match.Params{
		ID:             kernel.NewUUID(),
		LoadID:         loadID,
		CarrierID:      carrierID,
		Score:          87.5,
		DeadheadMiles:  42,
		FuelEstimate:   312.40,
		MarginEstimate: 918.25,
		CreatedAt:      createdAt,
	}, match.Snapshot{
		Status:       match.Accepted,
		RateOffered:  2750,
		RateAccepted: 2800,
		MatchedAt:    &matchedAt,
		AcceptedAt:   &acceptedAt,
	})
	suite.Require().NoError(err)

	err = suite.matchRepo.Add(context.Background(), accepted)
	suite.Require().NoError(err)

	query, err := queries.NewGetLoadMatchesQuery(loadID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	board := result[0]
	suite.Equal(accepted.ID(), board.ID)
	suite.Equal(carrierID, board.CarrierID)
	suite.Equal("accepted", board.Status)
	suite.InDelta(87.5, board.Score, 0.001)
	suite.InDelta(42.0, board.DeadheadMiles, 0.001)
	suite.InDelta(312.40, board.FuelEstimate, 0.001)
	suite.InDelta(918.25, board.MarginEstimate, 0.001)
	suite.InDelta(2750.0, board.RateOffered, 0.001)
	suite.InDelta(2800.0, board.RateAccepted, 0.001)
	suite.True(board.CreatedAt.Equal(createdAt), "created instant should survive the round trip")
}

func (suite *GetLoadMatchesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetLoadMatchesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetLoadMatchesQuery constructor")
}

func (suite *GetLoadMatchesQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	loadID := kernel.NewUUID()
	for i := range 50 {
		suite.seedMatch(loadID, kernel.NewUUID(), float64(i), float64(i*3))
	}

	query, err := queries.NewGetLoadMatchesQuery(loadID)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

// seedMatch persists a pending match with the given ranking inputs.
func (suite *GetLoadMatchesQueryHandlerTestSuite) seedMatch(
	loadID, carrierID kernel.UUID, score, deadheadMiles float64,
) *match.Match {
	seeded, err := match.NewMatch(match.Params{
		ID:             kernel.NewUUID(),
		LoadID:         loadID,
		CarrierID:      carrierID,
		Score:          score,
		DeadheadMiles:  deadheadMiles,
		FuelEstimate:   280,
		MarginEstimate: 650,
		CreatedAt:      time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)

	err = suite.matchRepo.Add(context.Background(), seeded)
	suite.Require().NoError(err)

	return seeded
}

func TestGetLoadMatchesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLoadMatchesQueryHandlerTestSuite))
}
