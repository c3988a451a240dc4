package config

import (
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/stake-plus/stakeboard/src/data"
	"github.com/stake-plus/stakeboard/src/forum"
)

// Config is the service-level configuration, env-driven. Protocol
// parameters live in the settings table, not here.
type Config struct {
	MySQLDSN         string
	RedisURL         string
	JWTSecret        string
	Port             string
	Owner            string
	DiscordToken     string
	DiscordChannelID string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	return Config{
		MySQLDSN:         getenv("MYSQL_DSN", "stakeboard:stakeboard@tcp(localhost:3306)/stakeboard"),
		RedisURL:         getenv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:        getenv("JWT_SECRET", ""),
		Port:             getenv("PORT", "8080"),
		Owner:            os.Getenv("OWNER_ADDRESS"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
	}
}

// Protocol assembles the engine config from the settings table, with env
// owner as the deploying identity and built-in defaults elsewhere.
func Protocol(db *gorm.DB, owner string) forum.Config {
	if err := data.LoadSettings(db); err != nil {
		log.Printf("load settings: %v (using defaults)", err)
	}

	cfg := forum.Config{
		Owner:            owner,
		MinStakeAmount:   data.GetSettingUint(data.SettingMinStakeAmount, forum.DefaultMinStakeAmount),
		PlatformFeeRate:  data.GetSettingUint(data.SettingPlatformFeeBps, forum.DefaultPlatformFeeRate),
		PlatformTreasury: data.GetSetting(data.SettingPlatformTreasury),
	}
	if dbOwner := data.GetSetting(data.SettingOwner); dbOwner != "" {
		cfg.Owner = dbOwner
	}
	if cfg.PlatformTreasury == "" {
		cfg.PlatformTreasury = cfg.Owner
	}
	return cfg
}
