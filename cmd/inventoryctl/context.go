package main

import (
	"database/sql"
	"strings"
	"sync"

	"inventory-workflow-backend/internal/config"
	"inventory-workflow-backend/internal/database"
	"inventory-workflow-backend/internal/logger"
)

type commandContext struct {
	databaseFlag *string
	driverFlag   *string

	once   sync.Once
	config *config.Config
	db     *sql.DB
	err    error
}

func newCommandContext(databaseFlag, driverFlag *string) *commandContext {
	return &commandContext{databaseFlag: databaseFlag, driverFlag: driverFlag}
}

func (c *commandContext) open() (*config.Config, *sql.DB, error) {
	c.once.Do(func() {
		cfg, err := config.Load(func(cfg *config.Config) {
			if v := strings.TrimSpace(*c.databaseFlag); v != "" {
				cfg.DatabaseURL = v
			}
			if v := strings.TrimSpace(*c.driverFlag); v != "" {
				cfg.DatabaseDriver = v
			}
		})
		if err != nil {
			c.err = err
			return
		}
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
		if err != nil {
			c.err = err
			return
		}
		c.config = cfg
		c.db = db
	})
	return c.config, c.db, c.err
}

func (c *commandContext) logger() *logger.Logger {
	cfg := c.config
	if cfg == nil {
		return logger.Nop()
	}
	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return logger.Nop()
	}
	return log
}

func (c *commandContext) close() {
	if c.db != nil {
		_ = c.db.Close()
	}
}
