package database

import (
	"VideoTube.com/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

// DB is the shared connection every dal package hangs off.
var DB *gorm.DB

func Init() {
	c := config.ConfigInfo.Mysql
	dsn := c.Username + ":" + c.Password + "@tcp(" + c.Addr + ")/" + c.Database +
		"?charset=" + c.Charset + "&parseTime=True&loc=Local"

	var err error
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}
}
