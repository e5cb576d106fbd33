// FILE: internal/model/character_model.go
// GORM model for the characters table. Owned by the character platform;
// this service only reads it.
package model

import "time"

type Character struct {
	Id        string    `gorm:"type:varchar(100);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Character) TableName() string {
	return "characters"
}
