package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// OrderTiming controls the simulated fulfilment timeline. Both delays are
// measured from checkout, not from the previous transition.
type OrderTiming struct {
	AssemblingDelay time.Duration `yaml:"assembling_delay" env:"ORDER_ASSEMBLING_DELAY" env-default:"2s"`
	ReadyDelay      time.Duration `yaml:"ready_delay" env:"ORDER_READY_DELAY" env-default:"17s"`
}

type Composer struct {
	// Assembly cost multiplier applied to each selected flower's unit price.
	PriceMultiplier float64 `yaml:"price_multiplier" env:"COMPOSER_PRICE_MULTIPLIER" env-default:"5"`
	BouquetName     string  `yaml:"bouquet_name" env:"COMPOSER_BOUQUET_NAME" env-default:"Signature Bouquet"`
}

type ImageGen struct {
	// With an empty APIKey the deterministic static generator is used.
	APIKey    string        `yaml:"api_key" env:"IMAGEGEN_API_KEY" env-default:""`
	Endpoint  string        `yaml:"endpoint" env:"IMAGEGEN_ENDPOINT" env-default:"https://queue.fal.run/fal-ai/flux/schnell"`
	StaticURL string        `yaml:"static_url" env:"IMAGEGEN_STATIC_URL" env-default:"/images/bouquets/custom-preview.jpg"`
	Timeout   time.Duration `yaml:"timeout" env:"IMAGEGEN_TIMEOUT" env-default:"60s"`
}

type Tracing struct {
	Enabled  bool   `yaml:"enabled" env:"TRACING_ENABLED" env-default:"false"`
	Endpoint string `yaml:"endpoint" env:"TRACING_ENDPOINT" env-default:"localhost:4318"`
}

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer  `yaml:"http_server"`
	OrderTiming OrderTiming `yaml:"order_timing"`
	Composer    Composer    `yaml:"composer"`
	ImageGen    ImageGen    `yaml:"imagegen"`
	Tracing     Tracing     `yaml:"tracing"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags
	}

	var cfg Config

	if configPath == "" {
		// No file given; defaults plus environment overrides.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read config from environment: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}
