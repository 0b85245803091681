package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq" // postgres driver

	"github.com/mytsparks/Campus-Resource-Hub/config"
)

type postgres struct {
	db *sql.DB
}

func NewPostgresDatabase(cfg *config.Config) (Database, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.DBName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	log.Printf("connected to database %s on port %d", cfg.Database.DBName, cfg.Database.Port)

	return &postgres{db: db}, nil
}

func (p *postgres) GetDB() *sql.DB {
	return p.db
}

func (p *postgres) Close() error {
	return p.db.Close()
}
