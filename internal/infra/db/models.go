package db

import "time"

type UserModel struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Nombre       string
	Apellido     string
	Correo       string
	Role         string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "usuario" }

type EventModel struct {
	ID            int64     `gorm:"primaryKey"`
	Nombre        string    `gorm:"uniqueIndex;not null"`
	Tipo          string    `gorm:"not null"`
	Fecha         time.Time `gorm:"index"`
	Empresa       string    `gorm:"not null"`
	Descripcion   string    `gorm:"size:500"`
	Participantes []UserModel `gorm:"many2many:evento_usuario;"`
	CreatedAt     time.Time   `gorm:"not null"`
}

func (EventModel) TableName() string { return "evento" }

type MilestoneModel struct {
	ID            int64  `gorm:"primaryKey"`
	Titulo        string `gorm:"not null"`
	Descripcion   string `gorm:"size:500;not null"`
	Categoria     string `gorm:"not null"`
	FechaRegistro time.Time
	UsuarioID     int64     `gorm:"index;not null"`
	EventoID      *int64    `gorm:"index"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (MilestoneModel) TableName() string { return "hito" }

type ExternalGuestModel struct {
	ID        int64  `gorm:"primaryKey"`
	EventoID  int64  `gorm:"index:idx_invitado_evento_correo,unique;not null"`
	Correo    string `gorm:"index:idx_invitado_evento_correo,unique;not null"`
	Nombre    string `gorm:"not null"`
	Apellido  string `gorm:"not null"`
	Telefono  string `gorm:"not null"`
	Empresa   string `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ExternalGuestModel) TableName() string { return "invitado_externo" }
