package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey   = "API_PORT"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
	}, nil
}
