package webserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/stake-plus/stakeboard/src/config"
	"github.com/stake-plus/stakeboard/src/forum"
)

func New(cfg config.Config, rdb *redis.Client, eng *forum.Engine) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery(), cors.Default(), RequestID())
	attachRoutes(g, cfg, rdb, eng)
	return g
}

func attachRoutes(g *gin.Engine, cfg config.Config, rdb *redis.Client, eng *forum.Engine) {
	secret := []byte(cfg.JWTSecret)

	auth := NewAuth(rdb, secret)
	threads := NewThreads(eng)
	replies := NewReplies(eng)
	premium := NewPremium(eng)
	votes := NewVotes(eng)
	stakes := NewStakes(eng)
	users := NewUsers(eng)
	admin := NewAdmin(eng)

	v1 := g.Group("/v1")
	{
		v1.POST("/auth/challenge", auth.Challenge)
		v1.POST("/auth/verify", auth.Verify)

		// Reads are open.
		v1.GET("/threads/:id", threads.Get)
		v1.GET("/threads/:id/boost", threads.Boost)
		v1.GET("/replies/:id", replies.Get)
		v1.GET("/users/:addr/reputation", users.Reputation)
		v1.GET("/stats", threads.Stats)

		secured := v1.Group("")
		secured.Use(JWT(secret))
		{
			secured.POST("/threads", threads.Create)
			secured.POST("/threads/:id/lock", threads.Lock)
			secured.POST("/threads/:id/access", premium.Purchase)
			secured.GET("/threads/:id/access", premium.Check)
			secured.POST("/replies", replies.Create)
			secured.POST("/votes", votes.Cast)
			secured.GET("/votes/:kind/:id", votes.Get)
			secured.POST("/tips", votes.Tip)
			secured.POST("/stake", stakes.Stake)
			secured.POST("/unstake", stakes.Unstake)
			secured.GET("/stake", stakes.Get)
			secured.PUT("/admin/settings", admin.UpdateSetting)
		}
	}
}
