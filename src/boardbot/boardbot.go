package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stake-plus/stakeboard/src/config"
	"github.com/stake-plus/stakeboard/src/data"
	"github.com/stake-plus/stakeboard/src/notifier"
)

func main() {
	cfg := config.Load()
	if cfg.DiscordToken == "" || cfg.DiscordChannelID == "" {
		log.Fatalf("DISCORD_TOKEN and DISCORD_CHANNEL_ID are required")
	}

	rdb := data.MustRedis(cfg.RedisURL)

	bot, err := notifier.New(notifier.Config{
		Token:     cfg.DiscordToken,
		ChannelID: cfg.DiscordChannelID,
		Redis:     rdb,
	})
	if err != nil {
		log.Fatalf("notifier: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Fatalf("notifier: %v", err)
	}
	defer bot.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
