package logsvc

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
)

type ZapLogger struct {
	zl *zap.Logger
}

var _ core.Logger = (*ZapLogger)(nil)

// NewZapLogger builds a console logger in debug mode (or when log.format is console), JSON otherwise.
func NewZapLogger(conf *core.Config) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(conf.Log.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing log level %q", conf.Log.Level)
	}

	var zconf zap.Config
	if conf.Debug || conf.Log.Format == "console" {
		zconf = zap.NewDevelopmentConfig()
	} else {
		zconf = zap.NewProductionConfig()
	}
	zconf.Level = zap.NewAtomicLevelAt(level)
	zconf.OutputPaths = []string{"stderr"}

	zl, err := zconf.Build(zap.Fields(zap.String("env", conf.Env), zap.String("build", conf.Build)))
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return &ZapLogger{zl: zl}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{zl: zap.NewNop()}
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.zl.Sync()
}

// fields converts logger args: errors become zap.Error, maps are flattened, anything else is zap.Any.
func fields(args []interface{}) []zap.Field {
	fs := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case error:
			fs = append(fs, zap.Error(v))
		case map[string]interface{}:
			for key, val := range v {
				fs = append(fs, zap.Any(key, val))
			}
		case zap.Field:
			fs = append(fs, v)
		default:
			fs = append(fs, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return fs
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) {
	l.zl.Debug(msg, fields(args)...)
}

func (l *ZapLogger) Info(msg string, args ...interface{}) {
	l.zl.Info(msg, fields(args)...)
}

func (l *ZapLogger) Warn(msg string, args ...interface{}) {
	l.zl.Warn(msg, fields(args)...)
}

func (l *ZapLogger) Error(msg string, args ...interface{}) {
	l.zl.Error(msg, fields(args)...)
}

func (l *ZapLogger) Fatal(msg string, args ...interface{}) {
	l.zl.Fatal(msg, fields(args)...)
}
