package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the reference catalog of positions an agent can hold.
// It cannot be deleted while agents reference it.
type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Agent is a staff member who can be made responsible for assets
type Agent struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Lastname  string    `gorm:"type:varchar(255);not null" json:"lastname"`
	DNI       *string   `gorm:"column:dni;type:varchar(20);uniqueIndex" json:"dni,omitempty"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"role_id"`
	Role      Role      `gorm:"foreignKey:RoleID" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
