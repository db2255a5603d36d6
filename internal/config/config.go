package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config regroupe la configuration du serveur. EstimatorBaseURL est
// obligatoire : sans lui aucune soumission n'est possible, on échoue au
// démarrage. MapsAPIKey est optionnelle : son absence active le mode
// Haversine uniquement pour la résolution de distance.
type Config struct {
	Port             string `mapstructure:"PORT"`
	DBHost           string `mapstructure:"DB_HOST"`
	DBPort           string `mapstructure:"DB_PORT"`
	DBUser           string `mapstructure:"DB_USER"`
	DBPassword       string `mapstructure:"DB_PASSWORD"`
	DBName           string `mapstructure:"DB_NAME"`
	EstimatorBaseURL string `mapstructure:"ESTIMATOR_BASE_URL"`
	MapsAPIKey       string `mapstructure:"MAPS_API_KEY"`

	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

// LoadConfig lit la configuration depuis l'environnement (et un .env
// optionnel dans le répertoire courant)
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Le .env est optionnel : l'environnement seul suffit
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	// Viper ne relit pas les clés env absentes du fichier lors d'Unmarshal
	for key, dst := range map[string]*string{
		"PORT":               &cfg.Port,
		"DB_HOST":            &cfg.DBHost,
		"DB_PORT":            &cfg.DBPort,
		"DB_USER":            &cfg.DBUser,
		"DB_PASSWORD":        &cfg.DBPassword,
		"DB_NAME":            &cfg.DBName,
		"ESTIMATOR_BASE_URL": &cfg.EstimatorBaseURL,
		"MAPS_API_KEY":       &cfg.MapsAPIKey,

		"CLOUDINARY_CLOUD_NAME": &cfg.CloudinaryCloudName,
		"CLOUDINARY_API_KEY":    &cfg.CloudinaryAPIKey,
		"CLOUDINARY_API_SECRET": &cfg.CloudinaryAPISecret,
	} {
		if *dst == "" {
			*dst = viper.GetString(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate vérifie la configuration fatale avant tout démarrage
func (c *Config) Validate() error {
	if c.EstimatorBaseURL == "" {
		return fmt.Errorf("ESTIMATOR_BASE_URL is required: no submission can be attempted without the estimation service")
	}
	if c.DBUser == "" || c.DBName == "" {
		return fmt.Errorf("database configuration incomplete (DB_USER, DB_NAME)")
	}
	return nil
}
