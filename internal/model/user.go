package model

import "time"

type UserRole string

const (
	Analyst UserRole = "analyst"
	Admin   UserRole = "admin"
)

// User é uma conta administrativa da plataforma. As rotas públicas de
// consulta não exigem login; importação e recarga de cache exigem.
// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('analyst','admin');default:'analyst'" json:"role"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "usuarios"
}
