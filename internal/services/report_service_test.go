package services_test

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
	"github.com/FORIFOR/fanscout-app/internal/services"
)

// recordingPusher captures hub publishes without a live connection.
type recordingPusher struct {
	pushed []models.Notification
}

func (p *recordingPusher) Publish(notification models.Notification) {
	p.pushed = append(p.pushed, notification)
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type reportFixture struct {
	users         *repositories.MemoryUserRepository
	notifications *repositories.MemoryNotificationRepository
	pusher        *recordingPusher
	service       *services.ReportService
	matchRepo     *repositories.MemoryMatchRepository
}

// newReportFixture wires the report service over memory repositories
// with one user, one club-scouted match and one report in place.
func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	users := repositories.NewMemoryUserRepository()
	matches := repositories.NewMemoryMatchRepository()
	reports := repositories.NewMemoryReportRepository()
	notifications := repositories.NewMemoryNotificationRepository()
	pusher := &recordingPusher{}

	notificationService := services.NewNotificationService(notifications, pusher, nil)
	service := services.NewReportService(reports, users, matches, notificationService)

	assert.NoError(t, users.Create(&models.User{Username: "taro", Email: "taro@example.com", FullName: "Taro Suzuki", Password: "hash"}))
	assert.NoError(t, matches.Create(&models.Match{HomeTeamID: 1, AwayTeamID: 2, Venue: "Ajinomoto Stadium", League: "J1 League", ScoutingClubs: []uint{1}}))

	report := &models.ScoutingReport{
		UserID: 1, MatchID: 1, ClubID: 1,
		PlayerName: "Kaito Sato", PlayerAge: 19, PlayerPosition: "Midfielder",
		OverallRating: 3, TechnicalAbility: 3, PhysicalAttributes: 3,
		TacticalUnderstanding: 3, MentalAttributes: 3, Potential: 3,
		Observations: "Strong first touch", Recommendation: "Recommend",
	}
	assert.NoError(t, service.CreateReport(report))

	return &reportFixture{
		users:         users,
		notifications: notifications,
		pusher:        pusher,
		service:       service,
		matchRepo:     matches,
	}
}

func TestReportService_LikeAwardsPointsAndNotifies(t *testing.T) {
	f := newReportFixture(t)

	adminID := uint(2)
	feedback := "We want to see more of this player"
	report, err := f.service.LikeReport(1, &adminID, &feedback)
	assert.NoError(t, err)
	assert.True(t, report.Liked)
	assert.NotNil(t, report.LikedAt)

	author, err := f.users.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, 10, author.RewardPoints)

	notifications, err := f.notifications.GetByUserID(1)
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationReportLiked, notifications[0].Type)
	assert.NotNil(t, notifications[0].RelatedID)
	assert.Equal(t, report.ID, *notifications[0].RelatedID)

	// The hub saw the same notification.
	assert.Len(t, f.pusher.pushed, 1)
	assert.Equal(t, notifications[0].ID, f.pusher.pushed[0].ID)
}

func TestReportService_DoubleLikeDoubleAwards(t *testing.T) {
	// Liking twice re-applies the award; there is no re-like guard and
	// this test pins the observed behavior down.
	f := newReportFixture(t)

	_, err := f.service.LikeReport(1, nil, nil)
	assert.NoError(t, err)
	_, err = f.service.LikeReport(1, nil, nil)
	assert.NoError(t, err)

	author, err := f.users.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, 20, author.RewardPoints)

	notifications, err := f.notifications.GetByUserID(1)
	assert.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestReportService_LikeUnknownReport(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.LikeReport(99, nil, nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	notifications, err := f.notifications.GetByUserID(1)
	assert.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestReportService_LikeSurvivesMissingAuthor(t *testing.T) {
	// The like is the primary mutation; a dangling author reference
	// only skips the award.
	f := newReportFixture(t)

	orphan := &models.ScoutingReport{
		UserID: 42, MatchID: 1, ClubID: 1,
		PlayerName: "Ghost", PlayerAge: 20, PlayerPosition: "Striker",
		OverallRating: 2, TechnicalAbility: 2, PhysicalAttributes: 2,
		TacticalUnderstanding: 2, MentalAttributes: 2, Potential: 2,
		Observations: "n/a", Recommendation: "Consider",
	}
	assert.NoError(t, f.service.CreateReport(orphan))

	report, err := f.service.LikeReport(orphan.ID, nil, nil)
	assert.NoError(t, err)
	assert.True(t, report.Liked)

	notifications, err := f.notifications.GetByUserID(42)
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestReportService_CreateRejectsNonScoutingClub(t *testing.T) {
	f := newReportFixture(t)

	report := &models.ScoutingReport{
		UserID: 1, MatchID: 1, ClubID: 9,
		PlayerName: "Kaito Sato", PlayerAge: 19, PlayerPosition: "Midfielder",
		OverallRating: 3, TechnicalAbility: 3, PhysicalAttributes: 3,
		TacticalUnderstanding: 3, MentalAttributes: 3, Potential: 3,
		Observations: "Strong first touch", Recommendation: "Recommend",
	}
	err := f.service.CreateReport(report)
	assert.ErrorIs(t, err, services.ErrClubNotScouting)
}

func TestReportService_CreateToleratesDanglingMatch(t *testing.T) {
	f := newReportFixture(t)

	report := &models.ScoutingReport{
		UserID: 1, MatchID: 77, ClubID: 1,
		PlayerName: "Kaito Sato", PlayerAge: 19, PlayerPosition: "Midfielder",
		OverallRating: 3, TechnicalAbility: 3, PhysicalAttributes: 3,
		TacticalUnderstanding: 3, MentalAttributes: 3, Potential: 3,
		Observations: "Strong first touch", Recommendation: "Recommend",
	}
	assert.NoError(t, f.service.CreateReport(report))
	assert.NotZero(t, report.ID)
}

func TestReportService_AttachPhoto(t *testing.T) {
	f := newReportFixture(t)

	report, err := f.service.AttachPhoto(1, "/uploads/kaito.jpg")
	assert.NoError(t, err)
	assert.NotNil(t, report.PhotoURL)
	assert.Equal(t, "/uploads/kaito.jpg", *report.PhotoURL)

	_, err = f.service.AttachPhoto(99, "/uploads/none.jpg")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
