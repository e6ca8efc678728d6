// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Port     int    `validate:"required,min=1,max=65535"`
	LogLevel string `validate:"oneof=debug info warn error"`

	// ValidateUserURL is the base url of the service deciding whether a caller may upload
	ValidateUserURL string `validate:"required,url"`
	OSVAPIURL       string `validate:"required,url"`
	SafetyDBURL     string `validate:"required,url"`

	DBConnRetry     int `validate:"min=1"`
	ScanConcurrency int `validate:"min=1"`

	RegistryTimeout time.Duration
	GitCloneTimeout time.Duration

	// RescanInterval of zero disables the background rescan
	RescanInterval time.Duration
	CatalogURL     string `validate:"omitempty,url"`
	CatalogUser    string
	CatalogPass    string

	DisableAutoMigrate bool
}

// LoadConfig reads a .env file into the environment if one exists.
func LoadConfig() error {
	return godotenv.Load()
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 5003)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MS_VALIDATE_USER_SERVICE_HOST", "127.0.0.1")
	v.SetDefault("MS_VALIDATE_USER_SERVICE_PORT", "80")
	v.SetDefault("OSV_API_URL", "https://api.osv.dev")
	v.SetDefault("SAFETY_DB_URL", "https://raw.githubusercontent.com/pyupio/safety-db/master/data/insecure_full.json")
	v.SetDefault("DB_CONN_RETRY", 3)
	v.SetDefault("SCAN_CONCURRENCY", 4)
	v.SetDefault("REGISTRY_TIMEOUT", 2*time.Second)
	v.SetDefault("GIT_CLONE_TIMEOUT", 5*time.Second)
	v.SetDefault("RESCAN_INTERVAL", time.Duration(0))
	v.SetDefault("DISABLE_AUTOMIGRATE", false)
}

// ReadConfig builds the service configuration from the environment.
func ReadConfig() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setConfigDefaults(v)

	validateUserURL := v.GetString("VALIDATEUSER_URL")
	if validateUserURL == "" {
		validateUserURL = "http://" + v.GetString("MS_VALIDATE_USER_SERVICE_HOST") + ":" + v.GetString("MS_VALIDATE_USER_SERVICE_PORT")
	}

	cfg := Config{
		Port:               v.GetInt("PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		ValidateUserURL:    validateUserURL,
		OSVAPIURL:          v.GetString("OSV_API_URL"),
		SafetyDBURL:        v.GetString("SAFETY_DB_URL"),
		DBConnRetry:        v.GetInt("DB_CONN_RETRY"),
		ScanConcurrency:    v.GetInt("SCAN_CONCURRENCY"),
		RegistryTimeout:    v.GetDuration("REGISTRY_TIMEOUT"),
		GitCloneTimeout:    v.GetDuration("GIT_CLONE_TIMEOUT"),
		RescanInterval:     v.GetDuration("RESCAN_INTERVAL"),
		CatalogURL:         v.GetString("CATALOG_URL"),
		CatalogUser:        v.GetString("CATALOG_USER"),
		CatalogPass:        v.GetString("CATALOG_PASS"),
		DisableAutoMigrate: v.GetBool("DISABLE_AUTOMIGRATE"),
	}

	if err := V.Struct(cfg); err != nil {
		return cfg, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
