package publish

// Config selects and configures the publishing backend.
type Config struct {
	Driver  string `env:"PUBLISH_DRIVER" envDefault:"local"`
	Prefix  string `env:"PUBLISH_PREFIX"`
	BaseURL string `env:"PUBLISH_BASE_URL"`

	// Dir is the destination of the local driver.
	Dir string `env:"PUBLISH_DIR" envDefault:"./reports"`

	S3 S3Config `envPrefix:"S3_"`
}

// S3Config configures the s3 driver. Credentials fall back to the default
// AWS chain when empty.
type S3Config struct {
	Bucket         string `env:"BUCKET"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	Endpoint       string `env:"ENDPOINT"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE" envDefault:"false"`
}
