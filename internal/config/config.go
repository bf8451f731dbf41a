package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"worksbill/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	CORS   CORSConfig
	Bill   BillConfig
	Backup BackupConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds object storage settings used for backups.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// BillConfig holds the deduction defaults and business thresholds for bill computation.
type BillConfig struct {
	DefaultIncomeTaxPercent decimal.Decimal
	DefaultDepositPercent   decimal.Decimal
	DefaultCessPercent      decimal.Decimal
	CessMaxPercent          decimal.Decimal
	// GSTThreshold is the minimum work Allot Amount at which CGST/SGST apply.
	GSTThreshold decimal.Decimal
	// GSTInclusiveScheme is the scheme whose restricted amount already includes GST.
	GSTInclusiveScheme string
	// GSTInclusiveDivisor de-grosses a GST-inclusive amount: basis = amount * 100 / divisor.
	GSTInclusiveDivisor decimal.Decimal
	ExpenditureUpdate   domain.ExpenditurePolicy
}

// BackupConfig holds settings for table snapshots.
type BackupConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// Load reads configuration from environment variables with the WORKSBILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WORKSBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "worksbill")
	v.SetDefault("db.password", "worksbill_secret")
	v.SetDefault("db.name", "worksbill_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "worksbill-backups")
	v.SetDefault("s3.endpoint", "")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bill defaults
	v.SetDefault("bill.income_tax_percent", "2.24")
	v.SetDefault("bill.deposit_percent", "10")
	v.SetDefault("bill.cess_percent", "1")
	v.SetDefault("bill.cess_max_percent", "100")
	v.SetDefault("bill.gst_threshold", "250000")
	v.SetDefault("bill.gst_inclusive_scheme", "JJM")
	v.SetDefault("bill.gst_inclusive_divisor", "118")
	v.SetDefault("bill.expenditure_update", string(domain.ExpenditureSync))

	v.SetDefault("backup.prefix", "backups")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "WORKSBILL_SERVER_PORT",
		"server.read_timeout":        "WORKSBILL_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "WORKSBILL_SERVER_WRITE_TIMEOUT",
		"server.environment":         "WORKSBILL_SERVER_ENVIRONMENT",
		"db.host":                    "WORKSBILL_DB_HOST",
		"db.port":                    "WORKSBILL_DB_PORT",
		"db.user":                    "WORKSBILL_DB_USER",
		"db.password":                "WORKSBILL_DB_PASSWORD",
		"db.name":                    "WORKSBILL_DB_NAME",
		"db.sslmode":                 "WORKSBILL_DB_SSLMODE",
		"db.max_open":                "WORKSBILL_DB_MAX_OPEN",
		"db.max_idle":                "WORKSBILL_DB_MAX_IDLE",
		"s3.region":                  "WORKSBILL_S3_REGION",
		"s3.bucket":                  "WORKSBILL_S3_BUCKET",
		"s3.endpoint":                "WORKSBILL_S3_ENDPOINT",
		"s3.access_key":              "WORKSBILL_S3_ACCESS_KEY",
		"s3.secret_key":              "WORKSBILL_S3_SECRET_KEY",
		"cors.allowed_origins":       "WORKSBILL_CORS_ALLOWED_ORIGINS",
		"bill.income_tax_percent":    "WORKSBILL_BILL_INCOME_TAX_PERCENT",
		"bill.deposit_percent":       "WORKSBILL_BILL_DEPOSIT_PERCENT",
		"bill.cess_percent":          "WORKSBILL_BILL_CESS_PERCENT",
		"bill.cess_max_percent":      "WORKSBILL_BILL_CESS_MAX_PERCENT",
		"bill.gst_threshold":         "WORKSBILL_BILL_GST_THRESHOLD",
		"bill.gst_inclusive_scheme":  "WORKSBILL_BILL_GST_INCLUSIVE_SCHEME",
		"bill.gst_inclusive_divisor": "WORKSBILL_BILL_GST_INCLUSIVE_DIVISOR",
		"bill.expenditure_update":    "WORKSBILL_BILL_EXPENDITURE_UPDATE",
		"backup.prefix":              "WORKSBILL_BACKUP_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if WORKSBILL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("WORKSBILL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	bill, err := loadBillConfig(v)
	if err != nil {
		return nil, err
	}
	cfg.Bill = *bill

	cfg.Backup = BackupConfig{
		Prefix: strings.Trim(v.GetString("backup.prefix"), "/"),
	}

	return cfg, nil
}

func loadBillConfig(v *viper.Viper) (*BillConfig, error) {
	dec := func(key string) (decimal.Decimal, error) {
		d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return decimal.Zero, fmt.Errorf("config %s: %w", key, err)
		}
		return d, nil
	}

	var (
		bc  BillConfig
		err error
	)
	if bc.DefaultIncomeTaxPercent, err = dec("bill.income_tax_percent"); err != nil {
		return nil, err
	}
	if bc.DefaultDepositPercent, err = dec("bill.deposit_percent"); err != nil {
		return nil, err
	}
	if bc.DefaultCessPercent, err = dec("bill.cess_percent"); err != nil {
		return nil, err
	}
	if bc.CessMaxPercent, err = dec("bill.cess_max_percent"); err != nil {
		return nil, err
	}
	if !bc.CessMaxPercent.IsPositive() || bc.CessMaxPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("config bill.cess_max_percent must be in (0, 100], got %s", bc.CessMaxPercent)
	}
	if bc.GSTThreshold, err = dec("bill.gst_threshold"); err != nil {
		return nil, err
	}
	if bc.GSTInclusiveDivisor, err = dec("bill.gst_inclusive_divisor"); err != nil {
		return nil, err
	}
	if !bc.GSTInclusiveDivisor.IsPositive() {
		return nil, fmt.Errorf("config bill.gst_inclusive_divisor must be positive")
	}
	bc.GSTInclusiveScheme = strings.TrimSpace(v.GetString("bill.gst_inclusive_scheme"))

	switch policy := domain.ExpenditurePolicy(strings.ToLower(v.GetString("bill.expenditure_update"))); policy {
	case domain.ExpenditureSync, domain.ExpenditureNone:
		bc.ExpenditureUpdate = policy
	default:
		return nil, fmt.Errorf("config bill.expenditure_update: unknown policy %q", policy)
	}
	return &bc, nil
}
