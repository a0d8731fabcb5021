package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/labkeeper/internal/flagx"
	"github.com/dmitrijs2005/labkeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "300s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into
// the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	BindAddr          string           `json:"bind_addr"`
	CertFile          string           `json:"cert_file"`
	KeyFile           string           `json:"key_file"`
	DatabaseDSN       string           `json:"database_dsn"`
	StudentDirRoot    string           `json:"student_dir_root"`
	MaxFailedAttempts int              `json:"max_failed_attempts"`
	LockoutWindow     timex.Duration   `json:"lockout_window"`
	PasswordLength    int              `json:"password_length"`
	Instructors       []InstructorSeed `json:"instructors"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
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

	config.BindAddr = c.BindAddr
	config.CertFile = c.CertFile
	config.KeyFile = c.KeyFile
	config.DatabaseDSN = c.DatabaseDSN
	config.StudentDirRoot = c.StudentDirRoot
	config.MaxFailedAttempts = c.MaxFailedAttempts
	config.LockoutWindow = time.Duration(c.LockoutWindow.Duration)
	config.PasswordLength = c.PasswordLength
	config.Instructors = c.Instructors
}
