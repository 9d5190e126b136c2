// Package log writes structured diagnostics through logrus. Messages take
// alternating key/value pairs: log.Info("saved", "path", p, "count", n).
// Console output meant for the user goes through internal/ui instead.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05.000"

var logger = logrus.New()

// SetLogger configures the logger. level follows logrus levels
// (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace).
func SetLogger(level uint32, jsonFormat, colorFormat bool) {
	SetOutput(os.Stderr)
	logger.SetLevel(logrus.Level(level))
	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
		return
	}
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     colorFormat,
		DisableColors:   !colorFormat,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
		DisableSorting:  true,
	})
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// fields turns key/value pairs into logrus fields. A dangling value is kept
// under "!badkey" so it is never silently dropped.
func fields(kv []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		if i+1 == len(kv) {
			f["!badkey"] = kv[i]
			break
		}
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		f[key] = kv[i+1]
	}
	return f
}

func Debug(msg string, kv ...interface{}) {
	logger.WithFields(fields(kv)).Debug(msg)
}

func Info(msg string, kv ...interface{}) {
	logger.WithFields(fields(kv)).Info(msg)
}

func Warn(msg string, kv ...interface{}) {
	logger.WithFields(fields(kv)).Warn(msg)
}

func Error(msg string, kv ...interface{}) {
	logger.WithFields(fields(kv)).Error(msg)
}
