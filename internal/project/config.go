// Package project handles the tool-level configuration file and new-project
// scaffolding.
package project

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is the tool configuration read from bellows.yml. Everything here
// can also be set per-run with flags; flags win.
type Config struct {
	Schema    string // schema file path
	Output    string // output root override
	Namespace string // model namespace override
	Force     bool   // overwrite existing files
}

// DefaultSchemaPath is used when neither bellows.yml nor a flag names one.
const DefaultSchemaPath = "schema.yml"

// LoadConfig reads bellows.yml from the current directory. A missing file is
// not an error; defaults come back instead.
func LoadConfig() (*Config, error) {
	cfg := &Config{Schema: DefaultSchemaPath}

	if _, err := os.Stat("bellows.yml"); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigName("bellows")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvPrefix("BELLOWS")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read bellows.yml: %w", err)
	}

	if s := v.GetString("schema"); s != "" {
		cfg.Schema = s
	}
	cfg.Output = v.GetString("output")
	cfg.Namespace = v.GetString("namespace")
	cfg.Force = v.GetBool("force")

	return cfg, nil
}
