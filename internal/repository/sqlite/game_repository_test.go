package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/repository"
	"github.com/vytor/gridstats/internal/repository/sqlite"
	"github.com/vytor/gridstats/internal/testutil"
)

type GameRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.GameRepository
}

func (s *GameRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewGameRepository(s.db)
}

func (s *GameRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func sampleGames() []models.Game {
	return []models.Game{
		{ID: 401, Week: 2, SeasonType: models.SeasonRegular, StartDate: "2023-09-09T19:30:00.000Z",
			HomeTeam: "Alabama", AwayTeam: "Texas", HomePoints: testutil.Int(24), AwayPoints: testutil.Int(34), Status: "completed"},
		{ID: 400, Week: 1, SeasonType: models.SeasonRegular, StartDate: "2023-09-02T23:00:00.000Z",
			HomeTeam: "Texas", AwayTeam: "Rice", HomePoints: testutil.Int(37), AwayPoints: testutil.Int(10), Status: "completed"},
		{ID: 499, Week: 1, SeasonType: models.SeasonPostseason, StartDate: "2024-01-01T20:45:00.000Z",
			HomeTeam: "Washington", AwayTeam: "Texas", Status: "scheduled"},
	}
}

func (s *GameRepositorySuite) TestUpsertBatchAndList() {
	ctx := context.Background()

	s.Require().NoError(s.repo.UpsertBatch(ctx, 4433, 2023, sampleGames()))

	games, err := s.repo.List(ctx, models.GameFilter{PlayerID: 4433, Year: 2023})
	s.Require().NoError(err)
	s.Require().Len(games, 3)

	s.Assert().Equal(models.NewGameKey(1, models.SeasonRegular), games[0].Key())
	s.Assert().Equal(models.NewGameKey(2, models.SeasonRegular), games[1].Key())
	s.Assert().Equal(models.NewGameKey(1, models.SeasonPostseason), games[2].Key())

	s.Assert().Equal(int64(400), games[0].ID)
	s.Require().NotNil(games[0].HomePoints)
	s.Assert().Equal(37, *games[0].HomePoints)
	s.Assert().Nil(games[2].HomePoints)
	s.Assert().Equal("scheduled", games[2].Status)
	s.Assert().Equal(int64(4433), games[2].PlayerID)
}

func (s *GameRepositorySuite) TestUpsertBatch_UpdatesExisting() {
	ctx := context.Background()
	games := sampleGames()
	s.Require().NoError(s.repo.UpsertBatch(ctx, 4433, 2023, games))

	games[2].HomePoints = testutil.Int(31)
	games[2].AwayPoints = testutil.Int(37)
	games[2].Status = "completed"
	s.Require().NoError(s.repo.UpsertBatch(ctx, 4433, 2023, games[2:]))

	all, err := s.repo.List(ctx, models.GameFilter{PlayerID: 4433, Year: 2023})
	s.Require().NoError(err)
	s.Assert().Len(all, 3)

	post, err := s.repo.List(ctx, models.GameFilter{PlayerID: 4433, Year: 2023, SeasonType: models.SeasonPostseason})
	s.Require().NoError(err)
	s.Require().Len(post, 1)
	s.Assert().Equal("completed", post[0].Status)
	s.Require().NotNil(post[0].AwayPoints)
	s.Assert().Equal(37, *post[0].AwayPoints)
}

func (s *GameRepositorySuite) TestList_ScopedToPlayerSeason() {
	ctx := context.Background()
	s.Require().NoError(s.repo.UpsertBatch(ctx, 4433, 2023, sampleGames()))
	s.Require().NoError(s.repo.UpsertBatch(ctx, 4433, 2022, sampleGames()[:1]))

	games, err := s.repo.List(ctx, models.GameFilter{PlayerID: 4433, Year: 2022})
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Assert().Equal(2022, games[0].Year)

	regular, err := s.repo.List(ctx, models.GameFilter{PlayerID: 4433, Year: 2023, SeasonType: models.SeasonRegular})
	s.Require().NoError(err)
	s.Assert().Len(regular, 2)
}

func (s *GameRepositorySuite) TestList_Empty() {
	games, err := s.repo.List(context.Background(), models.GameFilter{PlayerID: 1, Year: 2020})
	s.Require().NoError(err)
	s.Assert().Empty(games)
}

func TestGameRepositorySuite(t *testing.T) {
	suite.Run(t, new(GameRepositorySuite))
}
