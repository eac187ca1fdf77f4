package models

import "time"

// ScoutingReport is a fan-submitted player evaluation tied to one match
// and one target club. The six ratings are constrained to 1..5 at the
// request boundary. A report is mutated at most twice after creation:
// once to attach a photo and once to flip Liked false -> true.
type ScoutingReport struct {
	ID                    uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID                uint       `json:"userId" validate:"required"`
	MatchID               uint       `json:"matchId" validate:"required"`
	ClubID                uint       `json:"clubId" validate:"required"`
	PlayerName            string     `json:"playerName" validate:"required,max=100"`
	PlayerAge             int        `json:"playerAge" validate:"required,gte=14,lte=50"`
	PlayerPosition        string     `json:"playerPosition" validate:"required,max=50"`
	OverallRating         int        `json:"overallRating" validate:"required,min=1,max=5"`
	TechnicalAbility      int        `json:"technicalAbility" validate:"required,min=1,max=5"`
	PhysicalAttributes    int        `json:"physicalAttributes" validate:"required,min=1,max=5"`
	TacticalUnderstanding int        `json:"tacticalUnderstanding" validate:"required,min=1,max=5"`
	MentalAttributes      int        `json:"mentalAttributes" validate:"required,min=1,max=5"`
	Potential             int        `json:"potential" validate:"required,min=1,max=5"`
	Observations          string     `json:"observations" validate:"required,max=2000"`
	Recommendation        string     `json:"recommendation" validate:"required,max=100"`
	PhotoURL              *string    `json:"photoUrl"`
	Liked                 bool       `json:"liked" gorm:"default:false"`
	LikedAt               *time.Time `json:"likedAt"`
	LikedBy               *uint      `json:"likedBy"`
	Feedback              *string    `json:"feedback"`
	CreatedAt             time.Time  `json:"createdAt"`
}
