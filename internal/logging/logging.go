// Package logging builds the console logger shared by the CLI and library.
package logging

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logging levels accepted in configuration.
const (
	LevelNone   = "none"   // discard everything
	LevelQuiet  = "quiet"  // errors only
	LevelNormal = "normal" // info and warnings to stdout, errors to stderr
	LevelDebug  = "debug"  // normal plus debug messages
)

// ErrInvalidLevel indicates an unknown logging level.
var ErrInvalidLevel = errors.New("invalid logging level")

// Levels lists the accepted level names.
func Levels() []string {
	return []string{LevelNone, LevelQuiet, LevelNormal, LevelDebug}
}

// New returns a console logger. Messages below error level go to stdout,
// errors and above go to stderr.
func New(level string, stdout, stderr io.Writer) (*zap.Logger, error) {
	var minLow zapcore.Level
	lowEnabled := true

	switch level {
	case LevelNone:
		return zap.NewNop(), nil
	case LevelQuiet:
		lowEnabled = false
	case LevelNormal, "":
		minLow = zapcore.InfoLevel
	case LevelDebug:
		minLow = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)

	highCore := zapcore.NewCore(encoder.Clone(), zapcore.Lock(zapcore.AddSync(stderr)),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel
		}))
	lowCore := zapcore.NewNopCore()
	if lowEnabled {
		lowCore = zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(stdout)),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return minLow <= lvl && lvl < zapcore.ErrorLevel
			}))
	}

	return zap.New(zapcore.NewTee(highCore, lowCore)).Named("sheet2html"), nil
}
