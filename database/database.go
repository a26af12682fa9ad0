package database

import (
	"dishrank-restaurant-api/models"
	"dishrank-restaurant-api/structs"
	"dishrank-restaurant-api/utils"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var DB *gorm.DB

// InitDatabasePool 依照 utils.EnvConfig 建立全域連線池
func InitDatabasePool() {
	db, err := Open(utils.EnvConfig.Database)
	if err != nil {
		panic(err)
	}
	DB = db
}

// Open 依照 client 組合 dsn 並設定連線池
func Open(config structs.Database) (*gorm.DB, error) {
	dsn, err := dataSourceName(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(config.Client, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", config.Client, err)
	}

	if config.Client == "sqlite3" {
		// sqlite 只能單一連線，記憶體資料庫每條連線都是獨立的
		db.DB().SetMaxOpenConns(1)
	} else {
		db.DB().SetMaxIdleConns(int(config.MaxIdle))
		db.DB().SetMaxOpenConns(int(config.MaxOpenConn))
	}
	if config.MaxLifeTime != "" {
		lifeTime, err := time.ParseDuration(config.MaxLifeTime)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("parse max_life_time %q: %w", config.MaxLifeTime, err)
		}
		db.DB().SetConnMaxLifetime(lifeTime)
	}

	db.LogMode(config.LogEnable == 1)
	return db, nil
}

// Migrate 建立資料表，restaurant_dishes 由 many2many 自動產生
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Restaurant{},
		&models.Dish{},
		&models.ActivityLog{},
	).Error
}

func dataSourceName(config structs.Database) (string, error) {
	switch config.Client {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", config.User, config.Password, config.Host, config.Port, config.Db)
		if config.Params != "" {
			dsn += "?" + config.Params
		}
		return dsn, nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s", config.Host, config.Port, config.User, config.Db, config.Password)
		if config.Params != "" {
			dsn += " " + config.Params
		}
		return dsn, nil
	case "sqlite3":
		return config.Db, nil
	}
	return "", fmt.Errorf("unsupported database client %q", config.Client)
}
