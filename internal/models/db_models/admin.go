package db_models

type Admin struct {
	BaseModel
	FirstName    string `gorm:"size:50;not null"`
	LastName     string `gorm:"size:150;not null"`
	Email        string `gorm:"size:150;not null;unique"`
	PasswordHash string `gorm:"not null"`
}
