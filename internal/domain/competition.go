package domain

import "time"

const (
	CompetitionLevelProvincial    = "Provincial"
	CompetitionLevelNational      = "National"
	CompetitionLevelInternational = "International"

	CompetitionTypeIndividual = "Individual"
	CompetitionTypeTeam       = "Team"
)

type Competition struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Level            string    `json:"level"`
	Type             string    `json:"type"`
	PosterURL        string    `json:"imagePoster"`
	RegistrationLink string    `json:"registrationLink"`
	GuidebookLink    string    `json:"guidebookLink"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CompetitionSummary is embedded in team responses.
type CompetitionSummary struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Level    string    `json:"level"`
	EndDate  time.Time `json:"endDate"`
}

type CompetitionResult struct {
	ID             uint      `json:"id"`
	CompetitionID  uint      `json:"competition_id"`
	UserID         uint      `json:"user_id"`
	Result         string    `json:"result"`
	EvidenceURL    string    `json:"evidenceUrl"`
	CertificateURL string    `json:"statusUrl"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Participant is a user's registration record for a competition,
// independent of team membership. At most one exists per (user, competition).
type Participant struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"user_id"`
	CompetitionID   uint    `json:"competition_id"`
	TeamID          *uint   `json:"team_id"`
	IsLeader        bool    `json:"is_leader"`
	ResultID        *uint   `json:"result_id"`
	ReimburseStatus *string `json:"reimburse_status"`
}

// UserCompetitionStatus aggregates a user's standing in one competition.
type UserCompetitionStatus struct {
	IsJoined          bool               `json:"isJoined"`
	HasTeam           bool               `json:"hasTeam"`
	IsLeader          bool               `json:"isLeader"`
	TeamDetails       *TeamSlot          `json:"teamDetails"`
	ReimburseDetail   *Reimbursement     `json:"reimburseDetail"`
	CompetitionResult *CompetitionResult `json:"competitionResult"`
	HasReimburse      bool               `json:"hasReimburse"`
}

// TeamSlot is the compact team shape inside UserCompetitionStatus.
type TeamSlot struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	OpenSlots int    `json:"openSlots"`
	LeaderID  uint   `json:"leaderId"`
}
