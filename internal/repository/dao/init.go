package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Major{},
		&Competition{},
		&Team{},
		&Participant{},
		&CompetitionResult{},
		&Reimbursement{},
		&JoinRequest{},
		&Notification{},
	)
}
