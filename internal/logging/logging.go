package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// InitConsoleStdErrLog sets up the global logger to write human readable
// lines to stderr at the given level.
func InitConsoleStdErrLog(level string) error {
	return InitConsoleLog(os.Stderr, level)
}

// InitConsoleLog sets up the global logger on w.
func InitConsoleLog(w io.Writer, level string) error {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	lvl, err := ParseLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return err
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to warn and return an error.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.WarnLevel, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}

// Adapter exposes a zerolog.Logger through printf-style methods.
type Adapter struct {
	Logger zerolog.Logger
}

// NewAdapter wraps l.
func NewAdapter(l zerolog.Logger) Adapter { return Adapter{Logger: l} }

// Global wraps the package-level zerolog logger.
func Global() Adapter { return Adapter{Logger: log.Logger} }

func (a Adapter) Debugf(format string, args ...any) { a.Logger.Debug().Msgf(format, args...) }
func (a Adapter) Infof(format string, args ...any)  { a.Logger.Info().Msgf(format, args...) }
func (a Adapter) Warnf(format string, args ...any)  { a.Logger.Warn().Msgf(format, args...) }
func (a Adapter) Errorf(format string, args ...any) { a.Logger.Error().Msgf(format, args...) }
