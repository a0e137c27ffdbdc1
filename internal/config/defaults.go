package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress    = ":5000"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "go-recipe-book"
	defaultTokenDuration  = 30 * 24 * time.Hour
	defaultVersion        = "dev"
	defaultLogLevel       = "debug"
	defaultDBDriver       = DriverPostgres
	defaultPhotoDir       = "./public/uploads"
	defaultMaxUploadSize  = 1_000_000
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
			Version:          defaultVersion,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDBDriver,
			},
			Files: Files{
				PhotoDir:      defaultPhotoDir,
				MaxUploadSize: defaultMaxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:        defaultHTTPAddress,
			RequestTimeout:     defaultRequestTimeout,
			CORSAllowedOrigins: []string{"*"},
		},
	}
}
