package dao_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/codepedia/lomba-api/internal/repository/dao"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil || pool.Client.Ping() != nil {
		// No docker available, only the sqlmock tests run.
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=lomba_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start postgres container: %v\n", err)
		os.Exit(1)
	}
	_ = resource.Expire(180)

	dsn := fmt.Sprintf("host=localhost port=%s user=test password=test dbname=lomba_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			return err
		}
		testDB = db
		return nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "could not connect to postgres container: %v\n", err)
		os.Exit(1)
	}

	if err := dao.InitTables(testDB); err != nil {
		fmt.Fprintf(os.Stderr, "could not migrate tables: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = pool.Purge(resource)
	os.Exit(code)
}

func requirePostgres(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("docker is not available")
	}
}

func TestTeamDAO_ApproveMember_Integration(t *testing.T) {
	requirePostgres(t)
	ctx := context.Background()

	teamDAO := dao.NewTeamDAO(testDB)
	participantDAO := dao.NewParticipantDAO(testDB)

	team, err := teamDAO.Insert(ctx, dao.Team{
		Name:          "Garuda",
		CompetitionID: 300,
		LeaderID:      100,
		OpenSlots:     1,
		MaxMembers:    2,
		Status:        "ACTIVE",
	})
	require.NoError(t, err)

	_, err = participantDAO.Insert(ctx, dao.Participant{
		UserID:        100,
		CompetitionID: 300,
		TeamID:        &team.ID,
		IsLeader:      true,
	})
	require.NoError(t, err)

	t.Run("approval takes the slot and derives a participant", func(t *testing.T) {
		updated, err := teamDAO.ApproveMember(ctx, team.ID, 100, 101, 300)

		require.NoError(t, err)
		assert.True(t, updated.Members.Contains(101))
		assert.Equal(t, 0, updated.OpenSlots)

		member, err := participantDAO.FindByUserAndCompetition(ctx, 101, 300)
		require.NoError(t, err)
		require.NotNil(t, member.TeamID)
		assert.Equal(t, team.ID, *member.TeamID)
		assert.False(t, member.IsLeader)
	})

	t.Run("approval against a full team is refused", func(t *testing.T) {
		_, err := teamDAO.ApproveMember(ctx, team.ID, 100, 102, 300)

		assert.ErrorIs(t, err, dao.ErrTeamFull)

		_, err = participantDAO.FindByUserAndCompetition(ctx, 102, 300)
		assert.ErrorIs(t, err, dao.ErrParticipantNotFound)
	})

	t.Run("membership containment query", func(t *testing.T) {
		teams, err := teamDAO.FindByMember(ctx, 101)

		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Equal(t, team.ID, teams[0].ID)
	})
}

// Concurrent approvals race for the same slots; the conditional update
// inside the approval transaction must hand out exactly open_slots wins no
// matter how the goroutines interleave.
func TestTeamDAO_ApproveMember_ConcurrentApprovals_Integration(t *testing.T) {
	requirePostgres(t)
	ctx := context.Background()

	teamDAO := dao.NewTeamDAO(testDB)
	participantDAO := dao.NewParticipantDAO(testDB)

	const (
		leaderID      = 400
		competitionID = 310
		slots         = 2
		contenders    = 6
	)

	team, err := teamDAO.Insert(ctx, dao.Team{
		Name:          "Rajawali",
		CompetitionID: competitionID,
		LeaderID:      leaderID,
		OpenSlots:     slots,
		MaxMembers:    slots + 1,
		Status:        "ACTIVE",
	})
	require.NoError(t, err)

	_, err = participantDAO.Insert(ctx, dao.Participant{
		UserID:        leaderID,
		CompetitionID: competitionID,
		TeamID:        &team.ID,
		IsLeader:      true,
	})
	require.NoError(t, err)

	errs := make([]error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = teamDAO.ApproveMember(ctx, team.ID, leaderID, uint(401+i), competitionID)
		}(i)
	}
	wg.Wait()

	approved := 0
	for _, err := range errs {
		if err == nil {
			approved++
			continue
		}
		assert.ErrorIs(t, err, dao.ErrTeamFull)
	}
	assert.Equal(t, slots, approved)

	final, err := teamDAO.FindByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, final.OpenSlots)
	assert.Len(t, final.Members, slots)

	joined := 0
	for i := 0; i < contenders; i++ {
		memberID := uint(401 + i)
		member, err := participantDAO.FindByUserAndCompetition(ctx, memberID, competitionID)
		if errors.Is(err, dao.ErrParticipantNotFound) {
			assert.False(t, final.Members.Contains(memberID), "losers must not reach the roster")
			continue
		}
		require.NoError(t, err)
		require.NotNil(t, member.TeamID)
		assert.Equal(t, team.ID, *member.TeamID)
		assert.True(t, final.Members.Contains(memberID))
		joined++
	}
	assert.Equal(t, slots, joined, "participant rows must match the slots handed out")
}

func TestParticipantDAO_UniquePerCompetition_Integration(t *testing.T) {
	requirePostgres(t)
	ctx := context.Background()

	participantDAO := dao.NewParticipantDAO(testDB)

	_, err := participantDAO.Insert(ctx, dao.Participant{UserID: 200, CompetitionID: 301})
	require.NoError(t, err)

	_, err = participantDAO.Insert(ctx, dao.Participant{UserID: 200, CompetitionID: 301})
	assert.ErrorIs(t, err, dao.ErrAlreadyParticipating)
}

func TestTeamDAO_UniqueNamePerCompetition_Integration(t *testing.T) {
	requirePostgres(t)
	ctx := context.Background()

	teamDAO := dao.NewTeamDAO(testDB)

	_, err := teamDAO.Insert(ctx, dao.Team{Name: "Cendrawasih", CompetitionID: 302, LeaderID: 1, Status: "ACTIVE"})
	require.NoError(t, err)

	_, err = teamDAO.Insert(ctx, dao.Team{Name: "Cendrawasih", CompetitionID: 302, LeaderID: 2, Status: "ACTIVE"})
	assert.ErrorIs(t, err, dao.ErrTeamNameTaken)

	_, err = teamDAO.Insert(ctx, dao.Team{Name: "Cendrawasih", CompetitionID: 303, LeaderID: 2, Status: "ACTIVE"})
	assert.NoError(t, err, "same name in another competition is fine")
}
