package config

// Config concentra toda a configuração imutável dos serviços.
//
// Ela é carregada uma única vez no cold start e passada explicitamente aos
// construtores dos handlers — nenhum handler lê ambiente por conta própria.
type Config struct {
	Region string `env:"AWS_REGION" envDefault:"us-east-1"`

	// Storage
	Bucket        string `env:"VFS_BUCKET" validate:"required"`
	EventsTable   string `env:"VFS_EVENTS_TABLE" validate:"required"`
	ProfilesTable string `env:"VFS_PROFILES_TABLE" validate:"required"`
	// SessionsTable guarda o vínculo sessionId -> userId usado na checagem
	// de posse das chaves voice-tests/.
	SessionsTable string `env:"VFS_SESSIONS_TABLE" validate:"required"`

	// Índices secundários
	CreatedAtIndex  string `env:"VFS_CREATED_AT_INDEX" envDefault:"createdAt-index"`
	StatusDateIndex string `env:"VFS_STATUS_DATE_INDEX" envDefault:"status-date-index"`

	// CDN contém os aliases que substituem o host das URLs assinadas.
	CDN CDNConf

	Logging LoggingConf
	Metrics MetricsConf

	// SSMPrefix, quando definido, habilita overrides vindos do Parameter
	// Store (ex: "/vfs-tracker/prod").
	SSMPrefix string `env:"VFS_SSM_PREFIX"`
}

type CDNConf struct {
	// DefaultHost atende qualquer chamador fora da região CN.
	DefaultHost string `env:"VFS_CDN_HOST" envDefault:"cdn.vfs-tracker.app"`
	// CNHost atende chamadores cujo host encaminhado termina em ".cn".
	CNHost string `env:"VFS_CDN_HOST_CN" envDefault:"cdn.vfs-tracker.cn"`
}

type LoggingConf struct {
	Level  string `env:"VFS_LOG_LEVEL" envDefault:"info"`
	Format string `env:"VFS_LOG_FORMAT"`
}

type MetricsConf struct {
	Enabled   bool   `env:"VFS_METRICS_ENABLED"`
	Addr      string `env:"VFS_STATSD_ADDR" envDefault:"127.0.0.1:8125"`
	Namespace string `env:"VFS_METRICS_NAMESPACE" envDefault:"vfs_tracker."`
}
