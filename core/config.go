package core

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type (
	Config struct {
		Env          string `mapstructure:"-"`
		Debug        bool   `mapstructure:"debug"`
		TestMode     bool   `mapstructure:"testMode"`
		AppName      string `mapstructure:"appName"`
		Build        string `mapstructure:"build"`
		RollbarToken string `mapstructure:"rollbarToken"`

		Log     LogConfig     `mapstructure:"log"`
		Storage StorageConfig `mapstructure:"storage"`
		Planner PlannerConfig `mapstructure:"planner"`
	}

	LogConfig struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // console | json
	}

	StorageConfig struct {
		Driver   string         `mapstructure:"driver"`
		Path     string         `mapstructure:"path"`
		Encoding string         `mapstructure:"encoding"` // json | yaml
		Async    bool           `mapstructure:"async"`
		Database DatabaseConfig `mapstructure:"database"`
	}

	DatabaseConfig struct {
		Host       string `mapstructure:"host"`
		Port       int    `mapstructure:"port"`
		User       string `mapstructure:"user"`
		Password   string `mapstructure:"password"`
		Name       string `mapstructure:"name"`
		DisableTLS bool   `mapstructure:"disableTLS"`
	}

	PlannerConfig struct {
		Seed          bool `mapstructure:"seed"`
		UpcomingLimit int  `mapstructure:"upcomingLimit"`
		RecentLimit   int  `mapstructure:"recentLimit"`
	}
)

func (dbc DatabaseConfig) Address() string {
	return net.JoinHostPort(dbc.Host, strconv.Itoa(dbc.Port))
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Study Saathi")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("storage.driver", DriverBolt)
	v.SetDefault("storage.path", filepath.Join("data", "saathi.db"))
	v.SetDefault("storage.encoding", "json")
	v.SetDefault("storage.async", false)
	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", 5432)
	v.SetDefault("storage.database.user", "saathi")
	v.SetDefault("storage.database.password", "")
	v.SetDefault("storage.database.name", "saathi")
	v.SetDefault("storage.database.disableTLS", true)

	v.SetDefault("planner.seed", true)
	v.SetDefault("planner.upcomingLimit", 5)
	v.SetDefault("planner.recentLimit", 5)
}

// LoadConfig reads the configuration from defaults, `config/.env.<env>`, the environment
// (prefixed by the env name, eg. DEV_STORAGE_DRIVER) and, when cfgFile is set, a config file.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", cfgFile)
		}
	}

	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	conf.Env = env
	return conf, nil
}
