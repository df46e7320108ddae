package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		DebugAddress    string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	GradesConfig struct {
		SourceFile       string
		AllSubjectsLabel string
		NotGradedMarkers []string // dropped before aggregation
		ZeroMarkers      []string // counted as a 0 grade
	}

	Config struct {
		Env          string // DEV (local; default), TEST, QA, PROD
		AppName      string
		Build        string
		Debug        bool
		TestMode     bool
		RollbarToken string
		Server       ServerConfig
		Grades       GradesConfig
	}
)

// NewConfig loads the configuration from defaults, `config/.env.<env>` (if it exists) and the environment.
// Environment variables are prefixed with the current env, eg. `DEV_SERVER.ADDRESS` or `PROD_ROLLBARTOKEN`.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "GradeTrend")
	conf.SetDefault("build", "develop")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugAddress", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("grades.sourceFile", filepath.Join("config", "grades.yaml"))
	conf.SetDefault("grades.allSubjectsLabel", "all")
	conf.SetDefault("grades.notGradedMarkers", []string{"NonNote", "Absent", "Dispense", "NonRendu", "Inapte"})
	conf.SetDefault("grades.zeroMarkers", []string{"AbsentZero", "NonRenduZero"})

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:         conf.GetString("server.address"),
			DebugAddress:    conf.GetString("server.debugAddress"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  conf.GetBool("server.disableReqLogs"),
		},
		Grades: GradesConfig{
			SourceFile:       conf.GetString("grades.sourceFile"),
			AllSubjectsLabel: conf.GetString("grades.allSubjectsLabel"),
			NotGradedMarkers: conf.GetStringSlice("grades.notGradedMarkers"),
			ZeroMarkers:      conf.GetStringSlice("grades.zeroMarkers"),
		},
	}
}
