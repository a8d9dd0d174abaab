package logx

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
}

type Logx struct {
	sugar *zap.SugaredLogger
}

var loggerLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}

func GetLoggerLevelByString(lvl string) zapcore.Level {
	level, exist := loggerLevelMap[lvl]
	if !exist {
		return zapcore.InfoLevel
	}
	return level
}

// NewLogx builds a console logger writing to stderr. A GUI process has
// no log file of its own; the terminal that launched it gets the output.
func NewLogx(lvl zapcore.Level) *Logx {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stderr),
		zap.NewAtomicLevelAt(lvl),
	)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &Logx{sugar: logger.Sugar()}
}

func (l *Logx) Debug(args ...interface{}) {
	l.sugar.Debug(args...)
}

func (l *Logx) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *Logx) Info(args ...interface{}) {
	l.sugar.Info(args...)
}

func (l *Logx) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *Logx) Warn(args ...interface{}) {
	l.sugar.Warn(args...)
}

func (l *Logx) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *Logx) Error(args ...interface{}) {
	l.sugar.Error(args...)
}

func (l *Logx) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

func (l *Logx) Fatal(args ...interface{}) {
	l.sugar.Fatal(args...)
}

func (l *Logx) Fatalf(template string, args ...interface{}) {
	l.sugar.Fatalf(template, args...)
}

// Nop discards everything. Handy for tests.
type Nop struct{}

func (Nop) Debug(args ...interface{})                   {}
func (Nop) Debugf(template string, args ...interface{}) {}
func (Nop) Info(args ...interface{})                    {}
func (Nop) Infof(template string, args ...interface{})  {}
func (Nop) Warn(args ...interface{})                    {}
func (Nop) Warnf(template string, args ...interface{})  {}
func (Nop) Error(args ...interface{})                   {}
func (Nop) Errorf(template string, args ...interface{}) {}
func (Nop) Fatal(args ...interface{})                   {}
func (Nop) Fatalf(template string, args ...interface{}) {}
