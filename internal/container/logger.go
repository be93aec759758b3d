package container

import (
	"os"

	"github.com/samber/do"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerPackage provides the process-wide *zap.Logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		return NewLogger(do.MustInvoke[*Options](i)), nil
	})
}

// NewLogger builds a logger for the configured format. When LogFile is set, logs
// are also written to that file and rotated by lumberjack.
func NewLogger(opts *Options) *zap.Logger {
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)

	if opts.LogFormat == LogFormatJSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
		level = zapcore.InfoLevel
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
		level = zapcore.DebugLevel
	}

	sink := zapcore.AddSync(os.Stdout)

	if opts.LogFile != "" {
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
		}))
	}

	return zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller())
}
