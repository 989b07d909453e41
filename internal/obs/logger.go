// Package obs sets up logging and metrics shared by every component of the bot.
package obs

import (
	"os"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// ServiceFormatter is a Formatter that:
// 1. logs the unix time in milliseconds;
// 2. logs the service name;
type ServiceFormatter struct {
	svcName string
	log.Formatter
}

func (f *ServiceFormatter) Format(e *log.Entry) ([]byte, error) {
	e.Data["epochTimeMillis"] = e.Time.UnixNano() / int64(time.Millisecond)
	e.Data["service"] = f.svcName
	return f.Formatter.Format(e)
}

// SetupLog configures the global logrus logger
func SetupLog(name string, verbose bool) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&ServiceFormatter{
		svcName:   name,
		Formatter: &log.JSONFormatter{DisableTimestamp: true},
	})
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// WithFuncName returns an entry marked with the name of the calling function
func WithFuncName() *log.Entry {
	pc, _, _, ok := runtime.Caller(1)
	var funcName string
	if ok {
		frs := runtime.CallersFrames([]uintptr{pc})
		fr, _ := frs.Next()
		funcName = fr.Function
	}
	return log.WithField("func", funcName)
}
