package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// Init sets the global level and switches to JSON output when pretty is false.
func Init(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger()
	} else {
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}

func Info(msg string, keysAndValues ...any) {
	emit(log.Info(), msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	emit(log.Warn(), msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	emit(log.Error(), msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	emit(log.Fatal(), msg, keysAndValues...)
}

// emit attaches keysAndValues as key/value pairs. A lone error argument is
// attached under "error"; a trailing unpaired value under "arg".
func emit(ev *zerolog.Event, msg string, keysAndValues ...any) {
	i := 0
	for i < len(keysAndValues) {
		if err, ok := keysAndValues[i].(error); ok {
			ev = ev.AnErr("error", err)
			i++
			continue
		}
		key, ok := keysAndValues[i].(string)
		if !ok || i+1 >= len(keysAndValues) {
			ev = ev.Interface("arg", keysAndValues[i])
			i++
			continue
		}
		ev = ev.Interface(key, keysAndValues[i+1])
		i += 2
	}
	ev.Msg(msg)
}
