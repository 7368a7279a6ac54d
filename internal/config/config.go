package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Поддерживаемые хранилища.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Политики сверки пользователей при старте.
const (
	// PolicyReconcile удаляет пользователей вне allow-list и добавляет недостающих.
	PolicyReconcile = "reconcile"
	// PolicyEnsure только добавляет недостающих пользователей из allow-list.
	PolicyEnsure = "ensure"
)

// Значения по умолчанию.
const (
	DefaultMongoURI      = "mongodb://localhost:27017/"
	DefaultMongoDatabase = "inventory_app"
	DefaultSQLitePath    = "inventory.db"
	ConnectionFileName   = "config.txt"

	mongoURIKey = "MONGO_URI"
)

type Config struct {
	// Storage
	Backend       string `env:"BACKEND"`
	DatabaseDSN   string `env:"DATABASE_URI"` // путь к файлу sqlite или DSN postgres
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DB"`
	ConfigFile    string `env:"CONFIG_FILE"` // файл с MONGO_URI=..., по умолчанию config.txt рядом с бинарником

	// Bootstrap
	UserPolicy    string   `env:"USER_POLICY"`
	SeedFile      string   `env:"SEED_FILE"`
	SiteLocations []string `env:"SITE_LOCATIONS" envSeparator:","`

	// CLI
	SessionFile string `env:"SESSION_FILE"`
	LogLevel    string `env:"LOG_LEVEL"`
}

// NewConfig читает .env и переменные окружения и заполняет значения по умолчанию.
// Флаги командной строки привязываются отдельно через BindFlags.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	if cfg.Backend == "" {
		cfg.Backend = BackendSQLite
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = DefaultMongoDatabase
	}
	if cfg.UserPolicy == "" {
		cfg.UserPolicy = PolicyReconcile
	}
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = besideExecutable(ConnectionFileName)
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = defaultSessionFile()
	}
	return cfg
}

// BindFlags регистрирует флаги; текущие значения (из env) становятся значениями по умолчанию.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "storage backend: sqlite|postgres|mongo")
	fs.StringVarP(&c.DatabaseDSN, "database", "d", c.DatabaseDSN, "sqlite file path or postgres DSN")
	fs.StringVar(&c.MongoURI, "mongo-uri", c.MongoURI, "MongoDB connection string (overrides config file)")
	fs.StringVar(&c.MongoDatabase, "mongo-db", c.MongoDatabase, "MongoDB database name")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "file with MONGO_URI=<connection string>")
	fs.StringVar(&c.UserPolicy, "user-policy", c.UserPolicy, "startup user policy: reconcile|ensure")
	fs.StringVar(&c.SeedFile, "seed-file", c.SeedFile, "YAML file with default users and sample inventory")
	fs.StringSliceVar(&c.SiteLocations, "site-locations", c.SiteLocations, "site-specific location options")
	fs.StringVar(&c.SessionFile, "session-file", c.SessionFile, "file that remembers the logged in user")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug|info|warn|error (empty: development logger)")
}

// Resolve проверяет значения после разбора флагов и вычисляет производные.
func (c *Config) Resolve() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendSQLite:
		if c.DatabaseDSN == "" {
			c.DatabaseDSN = DefaultSQLitePath
		}
	case BackendPostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("backend %q requires DATABASE_URI", c.Backend)
		}
	case BackendMongo:
		if c.MongoURI == "" {
			c.MongoURI = ReadConnectionConfig(c.ConfigFile)
		}
	default:
		return fmt.Errorf("unknown backend %q (expected sqlite|postgres|mongo)", c.Backend)
	}

	switch c.UserPolicy {
	case PolicyReconcile, PolicyEnsure:
	default:
		return fmt.Errorf("unknown user policy %q (expected reconcile|ensure)", c.UserPolicy)
	}
	return nil
}

// ReadConnectionConfig ищет в файле первую строку MONGO_URI=...; остальные строки,
// в том числе не в формате KEY=VALUE, пропускаются.
// При отсутствии файла, ошибке чтения или пустом значении возвращает DefaultMongoURI.
func ReadConnectionConfig(path string) string {
	if path == "" {
		return DefaultMongoURI
	}
	f, err := os.Open(path)
	if err != nil {
		return DefaultMongoURI
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, mongoURIKey+"=") {
			continue
		}
		uri := strings.TrimPrefix(line, mongoURIKey+"=")
		// кавычки и комментарии в конце строки разбирает godotenv
		if values, err := godotenv.Unmarshal(line); err == nil {
			uri = values[mongoURIKey]
		}
		uri = strings.TrimSpace(uri)
		if uri == "" {
			return DefaultMongoURI
		}
		return uri
	}
	return DefaultMongoURI
}

func besideExecutable(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".itinventory_session"
	}
	return filepath.Join(dir, "ITInventory", "session")
}
