package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stakeboard/src/forum"
)

type Users struct {
	eng *forum.Engine
}

func NewUsers(eng *forum.Engine) Users { return Users{eng: eng} }

func (h Users) Reputation(c *gin.Context) {
	rep := h.eng.GetUserReputation(c.Param("addr"))
	c.JSON(http.StatusOK, gin.H{
		"address":        rep.Address,
		"totalUpvotes":   rep.TotalUpvotes,
		"totalDownvotes": rep.TotalDownvotes,
		"threadsCreated": rep.ThreadsCreated,
		"repliesCreated": rep.RepliesCreated,
		"tipsSent":       rep.TipsSent,
		"tipsReceived":   rep.TipsReceived,
		"stakedAmount":   rep.StakedAmount,
		"score":          rep.Score,
	})
}
