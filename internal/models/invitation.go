package models

import "gorm.io/gorm"

// Invitation is a pending request for a user to join a project. No HTTP
// surface operates on it yet; the table exists for the collaborator flow.
type Invitation struct {
	gorm.Model

	ProjectID uint   `gorm:"not null;index"`
	InviterID uint   `gorm:"not null"`
	Email     string `gorm:"not null"`
	Status    string `gorm:"not null;default:pending"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Inviter User    `gorm:"foreignKey:InviterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
