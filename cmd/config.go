package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	OSRMEndpoint     string
	RedisAddr        string
	RedisPassword    string
	KafkaHost        string
	KafkaEventsTopic string
}
