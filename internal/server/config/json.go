package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/uelms-project/uelms/internal/flagx"
	"github.com/uelms-project/uelms/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "5s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	DatabaseDSN            string         `json:"database_dsn"`
	ConnTimeout            timex.Duration `json:"conn_timeout"`
	AdminNotifyEmail       string         `json:"admin_notify_email"`
	BootstrapAdminUser     string         `json:"bootstrap_admin_user"`
	BootstrapAdminPassword string         `json:"bootstrap_admin_password"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.DatabaseDSN = c.DatabaseDSN
	config.ConnTimeout = time.Duration(c.ConnTimeout.Duration)
	config.AdminNotifyEmail = c.AdminNotifyEmail
	config.BootstrapAdminUser = c.BootstrapAdminUser
	config.BootstrapAdminPassword = c.BootstrapAdminPassword
}
