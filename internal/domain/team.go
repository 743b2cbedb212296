package domain

import "time"

const (
	TeamStatusActive   = "ACTIVE"
	TeamStatusInactive = "INACTIVE"
)

type Team struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	LeaderID      uint      `json:"leaderId"`
	CompetitionID uint      `json:"competitionId"`
	Members       []uint    `json:"members"`
	Description   string    `json:"description"`
	Phone         string    `json:"phone"`
	MaxMembers    int       `json:"maxMembers"`
	OpenSlots     int       `json:"openSlots"`
	EndDate       time.Time `json:"endDate"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EnrichedTeam is the team snapshot returned to callers: leader and member
// summaries resolved, competition collapsed to its summary.
type EnrichedTeam struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	OpenSlots   int                `json:"openSlots"`
	Status      string             `json:"status"`
	Leader      UserSummary        `json:"leader"`
	Members     []UserSummary      `json:"members"`
	Competition CompetitionSummary `json:"competition"`
}

// MemberDecision is the outcome of a leader's approve/reject call.
type MemberDecision struct {
	Status string        `json:"status"`
	Msg    string        `json:"msg,omitempty"`
	Team   *EnrichedTeam `json:"updatedTeam,omitempty"`
}

// TeamRoster is the leader-plus-members listing for one team.
type TeamRoster struct {
	Leader  UserSummary   `json:"leader"`
	Members []UserSummary `json:"members"`
}

// JoinRequest records an outstanding ask to join a team, paired 1:1 with a
// notification to the team leader.
type JoinRequest struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	TeamID        uint      `json:"team_id"`
	CompetitionID uint      `json:"competition_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type Notification struct {
	ID         uint         `json:"id"`
	SenderID   uint         `json:"senderId"`
	ReceiverID uint         `json:"receiverId"`
	TeamID     *uint        `json:"teamId"`
	Title      string       `json:"title"`
	Message    string       `json:"message"`
	CreatedAt  time.Time    `json:"created_at"`
	SenderUser *UserSummary `json:"senderUser,omitempty"`
}
