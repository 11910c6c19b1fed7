package config

import (
	"flag"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ModelPath        string `env:"MODEL_PATH" envDefault:"models/panel_classifier.onnx"`
	APIPort          string `env:"API_PORT" envDefault:"8000"`
	AllowedOrigin    string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:5173"`
	ImageSize        int    `env:"IMAGE_SIZE" envDefault:"244"`
	MaxUploadBytes   int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	OnnxRuntimeDylib string `env:"ONNX_RUNTIME_DYLIB"`
}

// LoadEnvFile loads environment variables from the file given by the -env
// flag, for local development. Without the flag only os.Environ is used.
func LoadEnvFile() {
	var configPath string

	flag.StringVar(&configPath, "env", "", "path to load env from")
	flag.Parse()

	if configPath == "" {
		log.Printf("no env file specified, using os.Environ only")
		return
	}

	log.Printf("loading env from file %s", configPath)
	if err := godotenv.Load(configPath); err != nil {
		log.Fatalf("error loading .env file '%s': %v", configPath, err)
	}
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
