// Package notifier mirrors committed ledger events into a Discord channel.
// It consumes the redis feed the API publishes; the ledger never waits on it.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/stake-plus/stakeboard/src/data"
)

type Config struct {
	Token     string
	ChannelID string
	Redis     *redis.Client
}

type Bot struct {
	session   *discordgo.Session
	rdb       *redis.Client
	channelID string
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func New(cfg Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	ctx, cancel := context.WithCancel(context.Background())
	return &Bot{
		session:   dg,
		rdb:       cfg.Redis,
		channelID: cfg.ChannelID,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord session: %w", err)
	}

	sub := b.rdb.Subscribe(b.ctx, data.ChannelEvents)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-b.ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				b.handleEvent(msg.Payload)
			}
		}
	}()

	log.Printf("Notifier listening on %s", data.ChannelEvents)
	return nil
}

func (b *Bot) Close() {
	b.cancel()
	b.wg.Wait()
	_ = b.session.Close()
}

func (b *Bot) handleEvent(payload string) {
	var ev map[string]any
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		log.Printf("notifier: bad event payload: %v", err)
		return
	}

	var text string
	switch ev["kind"] {
	case "thread_created":
		if ev["isPremium"] == true {
			text = fmt.Sprintf("New premium thread #%v by `%v`: **%v** (price %v)",
				ev["threadId"], ev["author"], ev["title"], ev["premiumPrice"])
		} else {
			text = fmt.Sprintf("New thread #%v by `%v`: **%v**", ev["threadId"], ev["author"], ev["title"])
		}
	case "access_purchased":
		text = fmt.Sprintf("`%v` unlocked premium thread #%v", ev["buyer"], ev["threadId"])
	case "config_changed":
		text = fmt.Sprintf("Protocol setting `%v` changed to `%v`", ev["name"], ev["value"])
	default:
		return
	}

	if _, err := b.session.ChannelMessageSend(b.channelID, text); err != nil {
		log.Printf("notifier: discord send: %v", err)
	}
}
