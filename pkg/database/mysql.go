package database

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"

	"vidtube.com/config"
)

var DB *gorm.DB

// Init opens the shared MySQL connection. Referential integrity lives at the
// application layer, so there are no foreign key constraints here; unique
// indexes for likes, subscriptions and playlist entries come from the models.
func Init() {
	cfg := config.ConfigInfo.Mysql
	dsn := cfg.Username + ":" + cfg.Password + "@tcp(" + cfg.Addr + ")/" + cfg.Database +
		"?charset=" + cfg.Charset + "&parseTime=True&loc=Local"
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}
}

// Ping reports store reachability for the healthcheck.
func Ping() error {
	if DB == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
