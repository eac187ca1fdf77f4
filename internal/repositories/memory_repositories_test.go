package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
)

func sampleReport(userID, matchID, clubID uint) *models.ScoutingReport {
	return &models.ScoutingReport{
		UserID:                userID,
		MatchID:               matchID,
		ClubID:                clubID,
		PlayerName:            "Kaito Sato",
		PlayerAge:             19,
		PlayerPosition:        "Midfielder",
		OverallRating:         3,
		TechnicalAbility:      3,
		PhysicalAttributes:    3,
		TacticalUnderstanding: 3,
		MentalAttributes:      3,
		Potential:             3,
		Observations:          "Strong first touch, reads the game well",
		Recommendation:        "Recommend",
	}
}

func TestMemoryRepositories_IDsAreUniqueAndIncreasing(t *testing.T) {
	repo := repositories.NewMemoryClubRepository()

	var lastID uint
	for i := 0; i < 5; i++ {
		club := &models.Club{Name: "Club", League: "J1 League"}
		assert.NoError(t, repo.Create(club))
		assert.Greater(t, club.ID, lastID)
		lastID = club.ID
	}
	assert.Equal(t, uint(5), lastID)
}

func TestMemoryClubRepository_GetAllInsertionOrder(t *testing.T) {
	repo := repositories.NewMemoryClubRepository()
	names := []string{"FC Tokyo", "Cerezo Osaka", "Vissel Kobe"}
	for _, name := range names {
		assert.NoError(t, repo.Create(&models.Club{Name: name, League: "J1 League"}))
	}

	clubs, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, clubs, 3)
	for i, club := range clubs {
		assert.Equal(t, names[i], club.Name)
		assert.Equal(t, uint(i+1), club.ID)
	}
}

func TestMemoryClubRepository_GetByIDNotFound(t *testing.T) {
	repo := repositories.NewMemoryClubRepository()
	_, err := repo.GetByID(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryClubRepository_ReturnsCopies(t *testing.T) {
	repo := repositories.NewMemoryClubRepository()
	assert.NoError(t, repo.Create(&models.Club{Name: "FC Tokyo", League: "J1 League"}))

	first, err := repo.GetByID(1)
	assert.NoError(t, err)
	first.Name = "mutated"

	second, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "FC Tokyo", second.Name)
}

func TestMemoryReportRepository_LikeTransition(t *testing.T) {
	repo := repositories.NewMemoryReportRepository()
	assert.NoError(t, repo.Create(sampleReport(1, 1, 1)))

	adminID := uint(4)
	feedback := "Great spot, we will follow up"
	report, err := repo.Like(1, &adminID, &feedback)
	assert.NoError(t, err)
	assert.True(t, report.Liked)
	assert.NotNil(t, report.LikedAt)
	assert.Equal(t, &adminID, report.LikedBy)
	assert.Equal(t, &feedback, report.Feedback)
}

func TestMemoryReportRepository_LikeWithoutAttribution(t *testing.T) {
	repo := repositories.NewMemoryReportRepository()
	assert.NoError(t, repo.Create(sampleReport(1, 1, 1)))

	report, err := repo.Like(1, nil, nil)
	assert.NoError(t, err)
	assert.True(t, report.Liked)
	assert.Nil(t, report.LikedBy)
	assert.Nil(t, report.Feedback)
}

func TestMemoryReportRepository_LikeNotFound(t *testing.T) {
	repo := repositories.NewMemoryReportRepository()
	_, err := repo.Like(1, nil, nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryReportRepository_ForeignKeyFilters(t *testing.T) {
	repo := repositories.NewMemoryReportRepository()
	assert.NoError(t, repo.Create(sampleReport(1, 10, 100)))
	assert.NoError(t, repo.Create(sampleReport(2, 10, 200)))
	assert.NoError(t, repo.Create(sampleReport(1, 20, 100)))

	byUser, err := repo.GetByUserID(1)
	assert.NoError(t, err)
	assert.Len(t, byUser, 2)

	byMatch, err := repo.GetByMatchID(10)
	assert.NoError(t, err)
	assert.Len(t, byMatch, 2)

	byClub, err := repo.GetByClubID(200)
	assert.NoError(t, err)
	assert.Len(t, byClub, 1)
	assert.Equal(t, uint(2), byClub[0].ID)
}

func TestMemoryReportRepository_AttachPhoto(t *testing.T) {
	repo := repositories.NewMemoryReportRepository()
	assert.NoError(t, repo.Create(sampleReport(1, 1, 1)))

	report, err := repo.AttachPhoto(1, "/uploads/player.jpg")
	assert.NoError(t, err)
	assert.NotNil(t, report.PhotoURL)
	assert.Equal(t, "/uploads/player.jpg", *report.PhotoURL)
}

func TestMemoryNotificationRepository_NewestFirst(t *testing.T) {
	repo := repositories.NewMemoryNotificationRepository()
	for i := 0; i < 3; i++ {
		assert.NoError(t, repo.Create(&models.Notification{UserID: 1, Type: models.NotificationRewardEarned}))
	}
	assert.NoError(t, repo.Create(&models.Notification{UserID: 2, Type: models.NotificationRewardEarned}))

	notifications, err := repo.GetByUserID(1)
	assert.NoError(t, err)
	assert.Len(t, notifications, 3)
	assert.Equal(t, uint(3), notifications[0].ID)
	assert.Equal(t, uint(2), notifications[1].ID)
	assert.Equal(t, uint(1), notifications[2].ID)
}

func TestMemoryNotificationRepository_MarkReadIdempotent(t *testing.T) {
	repo := repositories.NewMemoryNotificationRepository()
	assert.NoError(t, repo.Create(&models.Notification{UserID: 1, Type: models.NotificationReportLiked}))

	first, err := repo.MarkRead(1)
	assert.NoError(t, err)
	assert.True(t, first.Read)

	second, err := repo.MarkRead(1)
	assert.NoError(t, err)
	assert.True(t, second.Read)

	count, err := repo.CountUnread(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryNotificationRepository_CountUnread(t *testing.T) {
	repo := repositories.NewMemoryNotificationRepository()
	assert.NoError(t, repo.Create(&models.Notification{UserID: 1, Type: models.NotificationReportLiked}))
	assert.NoError(t, repo.Create(&models.Notification{UserID: 1, Type: models.NotificationRewardEarned}))
	assert.NoError(t, repo.Create(&models.Notification{UserID: 2, Type: models.NotificationRewardEarned}))

	_, err := repo.MarkRead(1)
	assert.NoError(t, err)

	count, err := repo.CountUnread(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryUserRepository_AddRewardPointsClampsAtZero(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	assert.NoError(t, repo.Create(&models.User{Username: "taro", Email: "taro@example.com", FullName: "Taro Suzuki", Password: "hash"}))

	user, err := repo.AddRewardPoints(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, user.RewardPoints)

	user, err = repo.AddRewardPoints(1, -25)
	assert.NoError(t, err)
	assert.Equal(t, 0, user.RewardPoints)
}

func TestMemoryUserRepository_LookupByUsernameAndEmail(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	assert.NoError(t, repo.Create(&models.User{Username: "taro", Email: "taro@example.com", FullName: "Taro Suzuki", Password: "hash"}))

	byUsername, err := repo.GetByUsername("taro")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), byUsername.ID)

	byEmail, err := repo.GetByEmail("taro@example.com")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), byEmail.ID)

	_, err = repo.GetByUsername("hanako")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryRewardRepository_RedeemTwiceKeepsFlag(t *testing.T) {
	repo := repositories.NewMemoryRewardRepository()
	assert.NoError(t, repo.Create(&models.Reward{UserID: 1, Title: "Match Tickets", RewardType: "tickets"}))

	first, err := repo.Redeem(1)
	assert.NoError(t, err)
	assert.True(t, first.Redeemed)

	second, err := repo.Redeem(1)
	assert.NoError(t, err)
	assert.True(t, second.Redeemed)
}

func TestMemoryMatchRepository_NilScoutingClubsDefaultsEmpty(t *testing.T) {
	repo := repositories.NewMemoryMatchRepository()
	match := &models.Match{HomeTeamID: 1, AwayTeamID: 2, Venue: "Ajinomoto Stadium", League: "J1 League"}
	assert.NoError(t, repo.Create(match))

	stored, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.NotNil(t, stored.ScoutingClubs)
	assert.Empty(t, stored.ScoutingClubs)
}
