package container

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Options configures both binaries. The server reads them through humacli, so
// each field is also settable as a flag or SERVICE_* environment variable.
type Options struct {
	Port          int    `default:"8888"           help:"Port to listen on"                                         short:"p"`
	LogFormat     string `default:"console"        help:"Log output format: console or json"`
	LogFile       string `default:""               help:"Also write logs to this file, rotated by size"`
	EventsBackend string `default:"memory"         help:"Event bus for registrations and visits: memory or redis" short:"e"`
	RedisAddr     string `default:"localhost:6379" help:"Redis server address"                                      short:"r"`
	DatabaseURL   string `default:""               help:"PostgreSQL URL for the event archive; empty logs events"`
	ConsumerGroup string `default:"hop-archive"    help:"Redis stream consumer group for the event archive"`
}
