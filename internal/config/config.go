package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	DBConnectionString string `envconfig:"DATABASE_URL" required:"true"`

	// JWTKeyMaterial is either the shared HMAC secret or a PEM-encoded
	// RSA/ECDSA public key, depending on what the identity provider signs
	// tokens with.
	JWTKeyMaterial string `envconfig:"JWT_KEY_MATERIAL" required:"true"`

	S3URL       string `envconfig:"S3_URL" required:"true"`
	S3Bucket    string `envconfig:"S3_BUCKET" required:"true"`
	S3Region    string `envconfig:"S3_REGION" required:"true"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY" required:"true"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY" required:"true"`

	// Video hosting service settings. The API token may come from the
	// environment directly or, when VideoAPITokenSecret is set, from
	// Secret Manager at startup.
	VideoAPIBaseURL     string `envconfig:"VIDEO_API_BASE_URL" required:"true"`
	VideoAPIToken       string `envconfig:"VIDEO_API_TOKEN"`
	VideoAPITokenSecret string `envconfig:"VIDEO_API_TOKEN_SECRET"`

	GCPProjectID     string `envconfig:"GCP_PROJECT_ID"`
	CourseEventTopic string `envconfig:"COURSE_EVENT_TOPIC" default:"course-events"`

	PresignExpirySec int `envconfig:"PRESIGN_EXPIRY_SEC" default:"900"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
