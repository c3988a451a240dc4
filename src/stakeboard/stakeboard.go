package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stake-plus/stakeboard/src/config"
	"github.com/stake-plus/stakeboard/src/data"
	"github.com/stake-plus/stakeboard/src/forum"
	"github.com/stake-plus/stakeboard/src/webserver"
)

func main() {
	cfg := config.Load()

	db := data.MustMySQL(cfg.MySQLDSN)
	if err := data.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	rdb := data.MustRedis(cfg.RedisURL)

	pcfg := config.Protocol(db, cfg.Owner)
	if pcfg.Owner == "" {
		log.Fatalf("owner identity not configured (OWNER_ADDRESS env or owner setting)")
	}

	store := data.NewStore(db)
	state, err := store.LoadState(pcfg)
	if err != nil {
		log.Fatalf("load state: %v", err)
	}
	ledger := data.NewSQLLedger(db)

	// Standalone deployments run without a sequencing chain; unix seconds
	// stand in for block height and satisfy the monotonic contract.
	clock := forum.ClockFunc(func() uint64 { return uint64(time.Now().Unix()) })

	journal := func(ev forum.Event) {
		store.Record(ev)
		if payload := eventPayload(ev); payload != nil {
			if err := data.PublishEvent(context.Background(), rdb, payload); err != nil {
				log.Printf("publish event: %v", err)
			}
		}
	}

	eng := forum.NewEngine(state, ledger, clock, journal)
	router := webserver.New(cfg, rdb, eng)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("StakeBoard API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}

// eventPayload selects which committed events fan out to subscribers.
func eventPayload(ev forum.Event) map[string]any {
	switch e := ev.(type) {
	case forum.ThreadCreated:
		return map[string]any{
			"kind":         "thread_created",
			"threadId":     e.Thread.ID,
			"author":       e.Thread.Author,
			"title":        e.Thread.Title,
			"isPremium":    e.Thread.IsPremium,
			"premiumPrice": e.Thread.PremiumPrice,
		}
	case forum.ReplyCreated:
		return map[string]any{
			"kind":     "reply_created",
			"replyId":  e.Reply.ID,
			"threadId": e.Reply.ThreadID,
			"author":   e.Reply.Author,
		}
	case forum.AccessPurchased:
		return map[string]any{
			"kind":     "access_purchased",
			"threadId": e.Grant.ThreadID,
			"buyer":    e.Grant.Address,
		}
	case forum.ConfigChanged:
		return map[string]any{
			"kind":  "config_changed",
			"name":  e.Name,
			"value": e.Value,
		}
	}
	return nil
}
