package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type DB struct {
	Host     string `yaml:"host" envconfig:"DB_HOST"`
	Port     string `yaml:"port" envconfig:"DB_PORT"`
	User     string `yaml:"user" envconfig:"DB_USER"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD" json:"-"`
	NameDB   string `yaml:"dbname" envconfig:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" envconfig:"DB_SSLMODE"`

	MaxConns        int32         `yaml:"maxConns" envconfig:"DB_MAX_CONNS"`
	MinConns        int32         `yaml:"minConns" envconfig:"DB_MIN_CONNS"`
	MaxConnLifetime time.Duration `yaml:"maxConnLifetime" envconfig:"DB_MAX_CONN_LIFETIME"`
	MaxConnIdleTime time.Duration `yaml:"maxConnIdleTime" envconfig:"DB_MAX_CONN_IDLE_TIME"`
	ConnectTimeout  time.Duration `yaml:"connectTimeout" envconfig:"DB_CONNECT_TIMEOUT"`
}

const (
	defaultMaxConns        = int32(8)
	defaultMinConns        = int32(2)
	defaultMaxConnLifetime = time.Hour
	defaultMaxConnIdleTime = 5 * time.Minute
	defaultConnectTimeout  = 5 * time.Second

	migrationsDir = "."
)

func (db *DB) DSN() string {
	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(db.Host, db.Port),
		Path:     db.NameDB,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

// NewPostgresDB opens a pool, pings it and applies every pending migration from migrations.
// A nil migrations skips the migration step.
func NewPostgresDB(ctx context.Context, cfg *DB, migrations fs.FS) (*pgxpool.Pool, error) {
	pool, err := NewPool(ctx, cfg.DSN(), cfg)
	if err != nil {
		return nil, err
	}
	if migrations == nil {
		return pool, nil
	}
	if err := Migrate(pool, migrations, CommandUp); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func NewPool(ctx context.Context, dsn string, cfg *DB) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.ParseConfig")
	}
	poolCfg.MaxConns = orDefault(cfg.MaxConns, defaultMaxConns)
	poolCfg.MinConns = orDefault(cfg.MinConns, defaultMinConns)
	poolCfg.MaxConnLifetime = orDefault(cfg.MaxConnLifetime, defaultMaxConnLifetime)
	poolCfg.MaxConnIdleTime = orDefault(cfg.MaxConnIdleTime, defaultMaxConnIdleTime)
	poolCfg.ConnConfig.ConnectTimeout = orDefault(cfg.ConnectTimeout, defaultConnectTimeout)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.NewWithConfig")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping")
	}
	return pool, nil
}

type Command string

const (
	CommandUp     Command = "up"
	CommandDown   Command = "down"
	CommandStatus Command = "status"
)

// Migrate runs a goose command over a short-lived database/sql handle built from the pool config.
func Migrate(pool *pgxpool.Pool, migrations fs.FS, cmd Command) error {
	db := stdlib.OpenDB(*pool.Config().ConnConfig)
	defer db.Close()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose.SetDialect")
	}
	return run(db, cmd)
}

func run(db *sql.DB, cmd Command) error {
	var err error
	switch cmd {
	case CommandUp:
		err = goose.Up(db, migrationsDir)
	case CommandDown:
		err = goose.Down(db, migrationsDir)
	case CommandStatus:
		err = goose.Status(db, migrationsDir)
	default:
		return fmt.Errorf("unknown migrate command %q", cmd)
	}
	if err != nil {
		return errors.Wrapf(err, "goose %s", cmd)
	}
	return nil
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
