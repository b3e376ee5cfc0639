package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	errorsUtils "github.com/Egor213/LogiGraph/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
)

func withSSLModeDisabled(pgURL string) string {
	if strings.Contains(pgURL, "sslmode=") {
		return pgURL
	}
	if strings.Contains(pgURL, "?") {
		return pgURL + "&sslmode=disable"
	}
	return pgURL + "?sslmode=disable"
}

// Migrate creates the logs table if it does not exist yet.
func Migrate(pgURL, migrationsPath string) error {
	pgURL = withSSLModeDisabled(pgURL)
	log.WithField("path", migrationsPath).Info("Applying migrations")

	if _, err := os.Stat(migrationsPath); err != nil {
		return errorsUtils.WrapPathErr(fmt.Errorf("migrations directory %q: %w", migrationsPath, err))
	}

	var (
		connAttempts = defaultAttempts
		err          error
		mgrt         *migrate.Migrate
	)

	for connAttempts > 0 {
		mgrt, err = migrate.New("file://"+migrationsPath, pgURL)
		if err == nil {
			break
		}

		time.Sleep(defaultTimeout)
		log.Infof("Postgres trying to connect, attempts left: %d", connAttempts)
		connAttempts--
	}

	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer mgrt.Close()

	err = mgrt.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return nil
	}
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	log.Info("Migration successful up")
	return nil
}
