package domain

import "time"

const (
	ReimburseStatusPending  = "PENDING"
	ReimburseStatusProcess  = "PROCESS"
	ReimburseStatusApproved = "APPROVED"
	ReimburseStatusRejected = "REJECTED"
)

type Reimbursement struct {
	ID            uint      `json:"id"`
	CompetitionID uint      `json:"competition_id"`
	UserID        uint      `json:"user_id"`
	Name          string    `json:"name"`
	BankName      string    `json:"bankName"`
	CardNumber    string    `json:"cardNumber"`
	ReceiptURL    string    `json:"receiptUrl"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReimburseDetail is the admin review shape: the claim plus the competition
// it belongs to and the claiming team's roster.
type ReimburseDetail struct {
	Reimbursement
	Competition ReimburseCompetition `json:"competition"`
}

type ReimburseCompetition struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Level       string        `json:"level"`
	Description string        `json:"description"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	Leader      *UserSummary  `json:"leader"`
	Members     []UserSummary `json:"members"`
}

// ReimburseDashboard is the admin overview aggregate.
type ReimburseDashboard struct {
	TotalReimburses    int             `json:"totalReimburses"`
	ApprovedReimburses ReimburseBucket `json:"approvedReimburses"`
	RejectedReimburses ReimburseBucket `json:"rejectedReimburses"`
	LatestReimburses   ReimburseBucket `json:"latestReimburses"`
}

type ReimburseBucket struct {
	Count int                 `json:"count"`
	Data  []ReimburseOverview `json:"data"`
}

// ReimburseOverview is one dashboard row: the claim with its competition title.
type ReimburseOverview struct {
	Reimbursement
	Competition *CompetitionSummary `json:"competition"`
}
