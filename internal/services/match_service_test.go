package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
	"github.com/FORIFOR/fanscout-app/internal/services"
)

func TestMatchService_EnrichResolvesClubs(t *testing.T) {
	clubs := repositories.NewMemoryClubRepository()
	matches := repositories.NewMemoryMatchRepository()
	service := services.NewMatchService(matches, clubs)

	assert.NoError(t, clubs.Create(&models.Club{Name: "FC Tokyo", League: "J1 League"}))
	assert.NoError(t, clubs.Create(&models.Club{Name: "Cerezo Osaka", League: "J1 League"}))

	match := &models.Match{
		HomeTeamID: 1, AwayTeamID: 2,
		Date:          time.Date(2025, 7, 12, 19, 0, 0, 0, time.UTC),
		Venue:         "Ajinomoto Stadium",
		League:        "J1 League",
		ScoutingClubs: []uint{1, 2},
	}
	assert.NoError(t, service.CreateMatch(match))

	detail, err := service.GetMatchByID(match.ID)
	assert.NoError(t, err)
	assert.NotNil(t, detail.HomeTeam)
	assert.Equal(t, "FC Tokyo", detail.HomeTeam.Name)
	assert.NotNil(t, detail.AwayTeam)
	assert.Equal(t, "Cerezo Osaka", detail.AwayTeam.Name)
	assert.Len(t, detail.ScoutingClubs, 2)
}

func TestMatchService_EnrichDropsDanglingClubIDs(t *testing.T) {
	clubs := repositories.NewMemoryClubRepository()
	matches := repositories.NewMemoryMatchRepository()
	service := services.NewMatchService(matches, clubs)

	assert.NoError(t, clubs.Create(&models.Club{Name: "Vissel Kobe", League: "J1 League"}))

	match := &models.Match{
		HomeTeamID: 1, AwayTeamID: 99,
		Venue: "Noevir Stadium", League: "J1 League",
		ScoutingClubs: []uint{1, 99},
	}
	assert.NoError(t, service.CreateMatch(match))

	detail, err := service.GetMatchByID(match.ID)
	assert.NoError(t, err)
	assert.NotNil(t, detail.HomeTeam)
	assert.Nil(t, detail.AwayTeam)
	// Unresolvable scouting club references are dropped, not errors.
	assert.Len(t, detail.ScoutingClubs, 1)
	assert.Equal(t, "Vissel Kobe", detail.ScoutingClubs[0].Name)
}

func TestMatchService_GetAllPreservesOrder(t *testing.T) {
	clubs := repositories.NewMemoryClubRepository()
	matches := repositories.NewMemoryMatchRepository()
	service := services.NewMatchService(matches, clubs)

	assert.NoError(t, service.CreateMatch(&models.Match{HomeTeamID: 1, AwayTeamID: 2, Venue: "A"}))
	assert.NoError(t, service.CreateMatch(&models.Match{HomeTeamID: 2, AwayTeamID: 1, Venue: "B"}))

	details, err := service.GetAllMatches()
	assert.NoError(t, err)
	assert.Len(t, details, 2)
	assert.Equal(t, "A", details[0].Venue)
	assert.Equal(t, "B", details[1].Venue)
}
