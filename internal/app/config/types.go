package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}

	InternalConfig struct {
		App     App
		JWT     JWT
		Storage Storage
		Audit   Audit
	}
	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
	}
	JWT struct {
		Secret string
	}
	Storage struct {
		BucketName            string
		MediaPublicHost       string
		ProxyPathPrefix       string
		ProxyRequestsPerSec   int
		ProxyRequestsBurst    int
		PresignedExpiryMinute int
	}
	Audit struct {
		RecordAccessQueue string
	}
)
