package model

import (
	"time"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/google/uuid"
)

const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
	RoleCompany   = "company"
	RoleAdmin     = "admin"
)

type User struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Email       string          `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role        string          `gorm:"type:varchar(20);index;not null" json:"role"`
	Phone       string          `gorm:"size:20" json:"phone"`
	CompanyName string          `gorm:"size:200" json:"company_name"`
	SocialLinks dto.SocialLinks `gorm:"serializer:json;type:jsonb" json:"social_links"`
	Portfolio   string          `json:"portfolio"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer || u.Role == RoleCompany
}
