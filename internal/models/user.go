package models

// User is an account created through signup or Google sign-in. Password
// holds the bcrypt hash, never the plain text.
type User struct {
	ID        string `json:"_id" bson:"_id" gorm:"primaryKey"`
	FirstName string `json:"firstName" bson:"firstName" gorm:"not null"`
	LastName  string `json:"lastName" bson:"lastName" gorm:"not null"`
	Email     string `json:"email" bson:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"password" bson:"password" gorm:"not null"`
	PhotoURL  string `json:"photoUrl" bson:"photoUrl"`
	About     string `json:"about" bson:"about"`
}
