package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	corelog "vacation-api/internal/core/logger"
)

var ErrUnsupportedDriver = errors.New("database: unsupported driver")

type Opts struct {
	Driver             string
	DSN                string // 非空时优先使用
	Host               string
	Port               int
	Database           string
	Username           string
	Password           string
	Charset            string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

func NewGorm(o Opts, l *zap.Logger) (*gorm.DB, error) {
	dsn, err := BuildDSN(o)
	if err != nil {
		return nil, err
	}
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(dsn)
	case "mysql":
		dial = mysql.Open(dsn)
	default:
		return nil, ErrUnsupportedDriver
	}
	l.Info("db dialing", zap.String("driver", o.Driver), zap.String("dsn", MaskDSN(dsn)))

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:                 newGormLogger(l, o.LogLevel),
		TranslateError:         true,
		SkipDefaultTransaction: true, // 单语句写入，不需要隐式事务
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)
	return db.Session(&gorm.Session{PrepareStmt: true}), nil
}

func newGormLogger(l *zap.Logger, level string) logger.Interface {
	lvl := logger.Warn
	switch level {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}
	std := corelog.ToStdLogger(l.Named("gorm").WithOptions(zap.WithCaller(false)), zapcore.InfoLevel)
	return logger.New(std, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
	})
}

// BuildDSN DSN 为空时由 host/port/database 等字段拼接
func BuildDSN(o Opts) (string, error) {
	switch o.Driver {
	case "mysql":
		if strings.TrimSpace(o.DSN) != "" {
			return normalizeMySQLDSN(o.DSN, o.Username, o.Password), nil
		}
		port := o.Port
		if port == 0 {
			port = 3306
		}
		charset := o.Charset
		if charset == "" {
			charset = "utf8mb4"
		}
		cred := o.Username
		if o.Password != "" {
			cred += ":" + o.Password
		}
		if cred != "" {
			cred += "@"
		}
		return fmt.Sprintf("%stcp(%s:%d)/%s?charset=%s&parseTime=true&loc=UTC", cred, o.Host, port, o.Database, charset), nil
	case "postgres":
		if strings.TrimSpace(o.DSN) != "" {
			return o.DSN, nil
		}
		port := o.Port
		if port == 0 {
			port = 5432
		}
		ssl := o.SSLMode
		if ssl == "" {
			ssl = "disable"
		}
		parts := []string{
			"host=" + o.Host,
			fmt.Sprintf("port=%d", port),
			"dbname=" + o.Database,
			"sslmode=" + ssl,
			"TimeZone=UTC",
		}
		if o.Username != "" {
			parts = append(parts, "user="+o.Username)
		}
		if o.Password != "" {
			parts = append(parts, "password="+o.Password)
		}
		return strings.Join(parts, " "), nil
	default:
		return "", ErrUnsupportedDriver
	}
}

// MaskDSN 隐藏密码，仅用于日志
func MaskDSN(dsn string) string {
	if at := strings.Index(dsn, "@"); at > 0 {
		if colon := strings.Index(dsn[:at], ":"); colon > 0 {
			return dsn[:colon+1] + "****" + dsn[at:]
		}
		return dsn
	}
	fields := strings.Fields(dsn)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=****"
		}
	}
	return strings.Join(fields, " ")
}

// normalizeMySQLDSN 兼容 mysql:// 与 jdbc:mysql:// 形式，转换成 go-sql-driver 语法
func normalizeMySQLDSN(input, userOverride, passOverride string) string {
	in := strings.TrimSpace(input)
	in = strings.TrimPrefix(in, "jdbc:")
	if !strings.HasPrefix(in, "mysql://") {
		return in
	}

	u, err := url.Parse(in)
	if err != nil {
		return in // 交给驱动报错
	}

	var user, pass string
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	q := u.Query()
	if v := q.Get("user"); v != "" {
		user = v
		q.Del("user")
	}
	if v := q.Get("password"); v != "" {
		pass = v
		q.Del("password")
	}
	if userOverride != "" {
		user = userOverride
	}
	if passOverride != "" {
		pass = passOverride
	}

	// JDBC 参数适配
	if q.Get("characterEncoding") != "" && q.Get("charset") == "" {
		q.Set("charset", q.Get("characterEncoding"))
	}
	for _, k := range []string{"characterEncoding", "useUnicode", "zeroDateTimeBehavior"} {
		q.Del(k)
	}
	if v := strings.ToLower(q.Get("useSSL")); v != "" {
		switch v {
		case "true", "1":
			q.Set("tls", "true")
		case "skip-verify", "preferred":
			q.Set("tls", v)
		default:
			q.Set("tls", "false")
		}
		q.Del("useSSL")
	}
	if tz := q.Get("serverTimezone"); tz != "" {
		q.Set("loc", tz)
		q.Del("serverTimezone")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "true")
	}
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}

	cred := user
	if pass != "" {
		cred += ":" + pass
	}
	if cred != "" {
		cred += "@"
	}
	dsn := fmt.Sprintf("%stcp(%s)/%s", cred, u.Host, strings.TrimPrefix(u.Path, "/"))
	if enc := q.Encode(); enc != "" {
		dsn += "?" + enc
	}
	return dsn
}
