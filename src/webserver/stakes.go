package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stakeboard/src/forum"
)

type Stakes struct {
	eng *forum.Engine
}

func NewStakes(eng *forum.Engine) Stakes { return Stakes{eng: eng} }

func (h Stakes) Stake(c *gin.Context) {
	var req struct {
		Amount     uint64 `json:"amount"`
		LockPeriod uint64 `json:"lockPeriod"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	if err := h.eng.Stake(c.GetString("addr"), req.Amount, req.LockPeriod); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h Stakes) Unstake(c *gin.Context) {
	if err := h.eng.Unstake(c.GetString("addr")); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h Stakes) Get(c *gin.Context) {
	addr := c.GetString("addr")
	s, ok := h.eng.GetStake(addr)
	if !ok {
		s = forum.Stake{Address: addr}
	}
	c.JSON(http.StatusOK, gin.H{
		"amount":      s.Amount,
		"lockedUntil": s.LockedUntil,
		"staked":      h.eng.IsStaked(addr),
	})
}
