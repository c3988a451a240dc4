package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stakeboard/src/forum"
)

type Votes struct {
	eng *forum.Engine
}

func NewVotes(eng *forum.Engine) Votes { return Votes{eng: eng} }

func parseKind(s string) (forum.TargetKind, bool) {
	switch s {
	case "thread":
		return forum.TargetThread, true
	case "reply":
		return forum.TargetReply, true
	}
	return 0, false
}

func (h Votes) Cast(c *gin.Context) {
	var req struct {
		TargetKind string `json:"targetKind" binding:"required,oneof=thread reply"`
		TargetID   uint64 `json:"targetId" binding:"required"`
		Upvote     *bool  `json:"upvote" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	kind, _ := parseKind(req.TargetKind)

	if err := h.eng.Vote(c.GetString("addr"), kind, req.TargetID, *req.Upvote); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h Votes) Get(c *gin.Context) {
	kind, ok := parseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"err": "bad target kind"})
		return
	}
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	addr := c.GetString("addr")
	var (
		v     forum.VoteRecord
		found bool
	)
	if kind == forum.TargetThread {
		v, found = h.eng.GetUserVoteOnThread(id, addr)
	} else {
		v, found = h.eng.GetUserVoteOnReply(id, addr)
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"voted": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"voted": true, "upvote": v.Upvote, "castAt": v.CastAt})
}

func (h Votes) Tip(c *gin.Context) {
	var req struct {
		TargetKind string `json:"targetKind" binding:"required,oneof=thread reply"`
		TargetID   uint64 `json:"targetId" binding:"required"`
		Amount     uint64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	kind, _ := parseKind(req.TargetKind)

	if err := h.eng.Tip(c.GetString("addr"), kind, req.TargetID, req.Amount); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
