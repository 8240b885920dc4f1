package config

// Configuration is populated from the environment, matching the names injected
// by the CronJob manifest (secrets `apikey`, `telegram-token`, configmap `lake-uuids`).
type Configuration struct {
	ApplicationConfigFileYmlPath string `env:"APP_CONFIG_FILE_YML_PATH" envDefault:"application.yml"`

	// cluster internal communication, hence plain http
	BackendURL  string `env:"BACKEND_URL" envDefault:"http://api:80"`
	BackendPath string `env:"BACKEND_PATH" envDefault:"lake/%s/booking"`
	BookingURL  string `env:"BOOKING_URL" envDefault:"https://www.blp-shop.de/de/eticket_applications/select_timeslot_list/10/%s/"`

	PotsdamUUID string `env:"POTSDAM_UUID"`
	APIKey      string `env:"API_KEY"`

	TelegramToken    string   `env:"TOKEN"`
	TelegramChatlist []string `env:"TELEGRAM_CHATLIST" envSeparator:"," envDefault:"139656428"`
}

// ApplicationConfiguration Must use full names for `sigs.k8s.io/yaml`
type ApplicationConfiguration struct {
	Server     Server
	Prometheus Prometheus
	Tracing    Tracing
	Scraper    ScraperConfig
	Scheduler  SchedulerConfig
	Registry   RegistryConfig
	Alerting   AlertingConfig
}

type Server struct {
	Port int
}

type Tracing struct {
	Enabled         bool
	Endpoint        string
	SamplerFraction float64
}

type Prometheus struct {
	Path string
}

type ScraperConfig struct {
	// DaysAhead is the number of days (starting today) to scrape slots for.
	// Zero means no pages are fetched and an empty event list is pushed,
	// clearing any stale slots held by the backend.
	DaysAhead int

	Variation     string
	TimeoutMillis int64
	MaxRetries    uint64
}

type SchedulerConfig struct {
	// Enabled switches from the run-once CronJob mode to a long-running
	// daemon that schedules runs itself and serves health/metrics.
	Enabled        bool
	IntervalMillis int64
}

type RegistryConfig struct {
	File FileConfig
	Git  GitConfig
	K8s  K8sConfig
}

type FileConfig struct {
	Disabled bool
	Order    int
	Path     string
}

type AlertingConfig struct {
	MessageTemplate string
}
