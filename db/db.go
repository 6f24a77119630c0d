package db

import (
	"blogserver/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else if config.SQLITE_FILE != "" {
		dialector = sqlite.Open(config.SQLITE_FILE)
	} else {
		panic("either MYSQL_DSN or SQLITE_FILE must be configured")
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		// Unique violations must surface as gorm.ErrDuplicatedKey so a follow
		// insert that loses the race still reports as a duplicate
		TranslateError: true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
