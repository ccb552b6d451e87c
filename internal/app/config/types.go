package config

type (
	DriverConfig struct {
		PostgresDB  PostgresDB
		Redis       Redis
		RabbitMQ    RabbitMQ
		Minio       Minio
		Meilisearch Meilisearch
		Logger      Logger
	}
	PostgresDB struct {
		Host     string
		Port     string
		DBName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
	Meilisearch struct {
		Host   string
		Port   string
		APIKey string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App   App
		JWT   JWT
		Minio AppMinio
	}

	App struct {
		Env                       string
		Port                      string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		SessionExpiryTimeInHours  int
		ImageUrlExpiryTimeInHours int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AppMinio struct {
		BucketName             string
		ImageMaxUploadSizeInMB int64
	}
)
