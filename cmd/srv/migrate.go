package main

import (
	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	if err := entity.MigrateTable(s.db); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
