package db

import "gorm.io/gorm"

type Repositories struct {
	State *StateRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		State: NewStateRepository(database),
	}
}
