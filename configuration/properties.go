package configuration

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"

	StorageDisk  = "disk"
	StorageS3    = "s3"
	StorageMinio = "minio"
)

type (
	Properties struct {
		Port        string `env:"PORT" envDefault:"5000"`
		GinMode     string `env:"GIN_MODE" envDefault:"debug"`
		StoreDriver string `env:"STORE_DRIVER" envDefault:"mongo"`
		DebugPprof  bool   `env:"DEBUG_PPROF" envDefault:"false"`

		Mongo     MongoProperties     `envPrefix:"MONGO_"`
		JWT       JWTProperties       `envPrefix:"JWT_"`
		Upload    UploadProperties    `envPrefix:"UPLOAD_"`
		Storage   StorageProperties   `envPrefix:"STORAGE_"`
		S3        S3Properties        `envPrefix:"S3_"`
		Minio     MinioProperties     `envPrefix:"MINIO_"`
		CORS      CORSProperties      `envPrefix:"CORS_"`
		RateLimit RateLimitProperties `envPrefix:"RATE_LIMIT_"`
	}

	MongoProperties struct {
		URI      string        `env:"URI" envDefault:"mongodb://127.0.0.1:27017/empowerHer"`
		Database string        `env:"DATABASE" envDefault:"empowerHer"`
		Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	}

	JWTProperties struct {
		Secret string        `env:"SECRET,required,notEmpty"`
		Issuer string        `env:"ISSUER" envDefault:"empowerher-api"`
		TTL    time.Duration `env:"TTL" envDefault:"168h"`
	}

	UploadProperties struct {
		Dir        string `env:"DIR" envDefault:"./uploads"`
		MaxBytes   int64  `env:"MAX_BYTES" envDefault:"5242880"`
		PublicPath string `env:"PUBLIC_PATH" envDefault:"/uploads"`
	}

	StorageProperties struct {
		Driver string `env:"DRIVER" envDefault:"disk"`
	}

	S3Properties struct {
		Bucket     string        `env:"BUCKET"`
		Region     string        `env:"REGION" envDefault:"us-east-1"`
		Endpoint   string        `env:"ENDPOINT"`
		AccessKey  string        `env:"ACCESS_KEY"`
		SecretKey  string        `env:"SECRET_KEY"`
		PresignTTL time.Duration `env:"PRESIGN_TTL" envDefault:"15m"`
	}

	MinioProperties struct {
		Endpoint   string        `env:"ENDPOINT" envDefault:"localhost:9000"`
		AccessKey  string        `env:"ACCESS_KEY"`
		SecretKey  string        `env:"SECRET_KEY"`
		Bucket     string        `env:"BUCKET" envDefault:"empowerher"`
		UseSSL     bool          `env:"USE_SSL" envDefault:"false"`
		PresignTTL time.Duration `env:"PRESIGN_TTL" envDefault:"15m"`
	}

	CORSProperties struct {
		Origins []string `env:"ORIGINS" envSeparator:","`
	}

	RateLimitProperties struct {
		Requests     int           `env:"REQUESTS" envDefault:"1000"`
		AuthRequests int           `env:"AUTH_REQUESTS" envDefault:"20"`
		Window       time.Duration `env:"WINDOW" envDefault:"1m"`
	}
)

// ReadProperties loads an optional .env file and parses the environment.
func ReadProperties() (*Properties, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	config := &Properties{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("read config error: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (p *Properties) validate() error {
	switch p.StoreDriver {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", p.StoreDriver)
	}

	switch p.Storage.Driver {
	case StorageDisk, StorageMinio:
	case StorageS3:
		if p.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", p.Storage.Driver)
	}

	if p.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}
