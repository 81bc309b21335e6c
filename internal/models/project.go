package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is a unit of work owned by exactly one user. AdminID is assigned at
// creation and never reassigned. Priority and status are opaque
// caller-supplied strings.
type Project struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string
	StartDate   datatypes.Date
	EndDate     datatypes.Date
	Priority    string
	Status      string
	AdminID     uint `gorm:"not null;index"`

	// Relationships
	Admin       User         `gorm:"foreignKey:AdminID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Invitations []Invitation `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
