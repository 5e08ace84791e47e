package db

import (
	"VideoTube.com/pkg/database"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init init DB
func Init() {
	DB = database.DB
}
