package logger

// Fields are default key/value pairs attached to every log entry.
type Fields map[string]interface{}

// Logger is the logging contract the rest of the application depends on.
// Error and Fatal take the error itself; context goes in properties.
type Logger interface {
	Info(message string, properties map[string]interface{})
	Error(err error, properties map[string]interface{})
	Fatal(err error, properties map[string]interface{})
	Debug(message string, properties map[string]interface{})
	SetLevel(level Level)
}

type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
	LevelDebug
)

var levelNames = map[Level]string{
	LevelInfo:  "INFO",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
	LevelDebug: "DEBUG",
}

func (l Level) String() string {
	return levelNames[l]
}
