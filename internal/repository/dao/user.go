package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrStudentIDExists = errors.New("student id already in use")
	ErrEmailExists     = errors.New("email already in use")
	ErrUserNotFound    = errors.New("user not found")
	ErrMajorNotFound   = errors.New("major not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	StudentID string `gorm:"unique;not null"`
	Email     string `gorm:"unique;not null"`
	Password  string `gorm:"not null"`

	Name       string `gorm:"not null"`
	Role       string `gorm:"not null;default:USER"`
	Cohort     string
	ProfileURL string
	MajorID    uint  `gorm:"index"`
	Major      Major `gorm:"foreignKey:MajorID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Major struct {
	ID        uint   `gorm:"primaryKey"`
	Major     string `gorm:"unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			if strings.Contains(err.Message, `"uni_users_student_id"`) {
				return User{}, ErrStudentIDExists
			}
			if strings.Contains(err.Message, `"uni_users_email"`) {
				return User{}, ErrEmailExists
			}
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByIDs(ctx context.Context, ids []uint) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) FindByStudentID(ctx context.Context, studentID string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "student_id = ?", studentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) UpdatePassword(ctx context.Context, studentID, hashed string) error {
	result := d.db.WithContext(ctx).
		Model(&User{}).
		Where("student_id = ?", studentID).
		Update("password", hashed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (d *UserDAO) UpdateProfileURL(ctx context.Context, studentID, url string) error {
	result := d.db.WithContext(ctx).
		Model(&User{}).
		Where("student_id = ?", studentID).
		Update("profile_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (d *UserDAO) FindMajorByName(ctx context.Context, name string) (Major, error) {
	var major Major

	result := d.db.WithContext(ctx).First(&major, "major = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Major{}, ErrMajorNotFound
		}

		return Major{}, result.Error
	}

	return major, nil
}

func (d *UserDAO) FindAllMajors(ctx context.Context) ([]Major, error) {
	var majors []Major

	result := d.db.WithContext(ctx).Find(&majors)
	if result.Error != nil {
		return nil, result.Error
	}

	return majors, nil
}
