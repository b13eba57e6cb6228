package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Service names, used for per-service defaults and log tagging.
const (
	ServiceAuth     = "auth"
	ServiceDoctors  = "doctors"
	ServicePatients = "patients"
	ServiceRDV      = "rdv"
)

// Service endpoint profiles.
const (
	ProfileLocal     = "local"
	ProfileDocker    = "docker"
	ProfileTailscale = "tailscale"
)

type serviceDefaults struct {
	Port   uint16
	DBPath string
}

var defaultsByService = map[string]serviceDefaults{
	ServiceAuth:     {Port: 5009, DBPath: "instance/base.db"},
	ServiceDoctors:  {Port: 5000, DBPath: "doctors.db"},
	ServicePatients: {Port: 5001, DBPath: "patients.db"},
	ServiceRDV:      {Port: 5005, DBPath: "clinique.db"},
}

// Endpoints holds the base URLs of the four services.
type Endpoints struct {
	Auth     string `json:"auth_url"`
	Patients string `json:"patients_url"`
	Doctors  string `json:"doctors_url"`
	RDV      string `json:"rdv_url"`
}

var profiles = map[string]Endpoints{
	ProfileDocker: {
		Auth:     "http://auth-service:5009",
		Patients: "http://patients-backend:5001",
		Doctors:  "http://doctors-service:5000",
		RDV:      "http://rdv-backend:5005",
	},
	ProfileTailscale: {
		Auth:     "http://100.119.228.76:5009",
		Patients: "http://100.83.82.128:5001",
		Doctors:  "http://100.95.250.126:5000",
		RDV:      "http://100.125.192.97:5005",
	},
	ProfileLocal: {
		Auth:     "http://127.0.0.1:5009",
		Patients: "http://127.0.0.1:5001",
		Doctors:  "http://127.0.0.1:5000",
		RDV:      "http://127.0.0.1:5005",
	},
}

// S3Config configures the S3 photo store.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// Config holds the application's configuration values.
type Config struct {
	AppName        string
	AppEnv         string
	AppPort        uint16
	GinMode        string
	DBDriver       string
	DBPath         string
	DBHost         string
	DBPort         uint16
	DBName         string
	DBUser         string
	DBPass         string
	ServiceProfile string
	Endpoints      Endpoints
	RemoteTimeout  time.Duration
	JWTSecret      string
	SessionTTL     time.Duration
	CORSOrigins    []string
	InvoiceYearTag string
	UploadDir      string
	MaxUploadMB    int
	PhotoStore     string
	S3             S3Config
	RedisAddr      string
	RedisPass      string
	RedisDB        int
	LogLevel       string
	LogFormat      string
	LogFile        string
	GeoIPDBPath    string
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables (and an optional .env file) once,
// and returns the singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
		config = fromViper(newViper())
	})
	return config
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APPNAME", "Clinique")
	v.SetDefault("APPENV", "development")
	v.SetDefault("GINMODE", "debug")
	v.SetDefault("APPPORT", 0)
	v.SetDefault("DBDRIVER", "sqlite")
	v.SetDefault("DBPORT", 3306)
	v.SetDefault("SERVICE_PROFILE", "")
	v.SetDefault("USE_DOCKER", false)
	v.SetDefault("REMOTE_TIMEOUT_SECONDS", 3)
	v.SetDefault("SESSION_TTL_MINUTES", 60)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("INVOICE_YEAR_TAG", "2023")
	v.SetDefault("UPLOAD_DIR", "static/uploads")
	v.SetDefault("MAX_UPLOAD_MB", 5)
	v.SetDefault("PHOTO_STORE", "local")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	return v
}

func fromViper(v *viper.Viper) *Config {
	profile := strings.ToLower(v.GetString("SERVICE_PROFILE"))
	if profile == "" {
		profile = ProfileLocal
		if v.GetBool("USE_DOCKER") {
			profile = ProfileDocker
		}
	}

	return &Config{
		AppName:        v.GetString("APPNAME"),
		AppEnv:         v.GetString("APPENV"),
		AppPort:        uint16(v.GetUint("APPPORT")),
		GinMode:        v.GetString("GINMODE"),
		DBDriver:       strings.ToLower(v.GetString("DBDRIVER")),
		DBPath:         v.GetString("DBPATH"),
		DBHost:         v.GetString("DBHOST"),
		DBPort:         uint16(v.GetUint("DBPORT")),
		DBName:         v.GetString("DBNAME"),
		DBUser:         v.GetString("DBUSER"),
		DBPass:         v.GetString("DBPASS"),
		ServiceProfile: profile,
		Endpoints:      resolveEndpoints(v, profile),
		RemoteTimeout:  time.Duration(v.GetInt("REMOTE_TIMEOUT_SECONDS")) * time.Second,
		JWTSecret:      v.GetString("JWTSECRET"),
		SessionTTL:     time.Duration(v.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		InvoiceYearTag: v.GetString("INVOICE_YEAR_TAG"),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		MaxUploadMB:    v.GetInt("MAX_UPLOAD_MB"),
		PhotoStore:     strings.ToLower(v.GetString("PHOTO_STORE")),
		S3: S3Config{
			Bucket:          v.GetString("S3_BUCKET"),
			Region:          v.GetString("S3_REGION"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
		},
		RedisAddr:   v.GetString("REDIS_ADDR"),
		RedisPass:   v.GetString("REDIS_PASS"),
		RedisDB:     v.GetInt("REDIS_DB"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		LogFile:     v.GetString("LOG_FILE"),
		GeoIPDBPath: v.GetString("GEOIP_DB_PATH"),
	}
}

// resolveEndpoints picks the profile's URLs; explicit *_SERVICE_URL variables win.
func resolveEndpoints(v *viper.Viper, profile string) Endpoints {
	ep, ok := profiles[profile]
	if !ok {
		log.Printf("unknown SERVICE_PROFILE %q, falling back to %s", profile, ProfileLocal)
		ep = profiles[ProfileLocal]
	}
	if u := v.GetString("AUTH_SERVICE_URL"); u != "" {
		ep.Auth = u
	}
	if u := v.GetString("PATIENTS_SERVICE_URL"); u != "" {
		ep.Patients = u
	}
	if u := v.GetString("DOCTORS_SERVICE_URL"); u != "" {
		ep.Doctors = u
	}
	if u := v.GetString("RDV_SERVICE_URL"); u != "" {
		ep.RDV = u
	}
	ep.Auth = strings.TrimRight(ep.Auth, "/")
	ep.Patients = strings.TrimRight(ep.Patients, "/")
	ep.Doctors = strings.TrimRight(ep.Doctors, "/")
	ep.RDV = strings.TrimRight(ep.RDV, "/")
	return ep
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsTest reports whether the process runs with APPENV=test.
func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

// ListenAddress returns the address a service binds to. APPPORT overrides the
// service's historical default port.
func (c *Config) ListenAddress(service string) string {
	port := c.AppPort
	if port == 0 {
		port = defaultsByService[service].Port
	}
	return fmt.Sprintf(":%d", port)
}

// SQLitePath returns the sqlite file used by a service.
func (c *Config) SQLitePath(service string) string {
	if c.DBPath != "" {
		return c.DBPath
	}
	if d, ok := defaultsByService[service]; ok {
		return d.DBPath
	}
	return service + ".db"
}

// ConnectDB opens the relational store of a service with the configured driver.
// In the test environment an isolated in-memory sqlite database is returned.
func ConnectDB(service string) (*gorm.DB, error) {
	cfg := LoadConfig()

	var dialector gorm.Dialector
	switch {
	case cfg.IsTest():
		dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", service, time.Now().UnixNano())
		dialector = sqlite.Open(dsn)
	case cfg.DBDriver == "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	case cfg.DBDriver == "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPass, cfg.DBName)
		dialector = postgres.Open(dsn)
	case cfg.DBDriver == "sqlite" || cfg.DBDriver == "":
		path, err := ensureSQLiteDir(cfg.SQLitePath(service))
		if err != nil {
			return nil, err
		}
		dialector = sqlite.Open(path + "?_foreign_keys=on")
	default:
		return nil, fmt.Errorf("unsupported DBDRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", service, err)
	}
	return db, nil
}

func ensureSQLiteDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return path, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create sqlite directory %s: %w", dir, err)
	}
	return path, nil
}
