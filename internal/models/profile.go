package models

import "time"

// Profile is a resume keyed by the hash of its extracted name and email.
type Profile struct {
	ID          string    `json:"_id" bson:"_id" gorm:"primaryKey"`
	Name        string    `json:"name" bson:"name" gorm:"not null"`
	Email       string    `json:"email" bson:"email" gorm:"uniqueIndex;not null"`
	FileName    string    `json:"fileName" bson:"fileName"`
	FileContent string    `json:"fileContent" bson:"fileContent" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
