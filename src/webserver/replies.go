package webserver

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/stake-plus/stakeboard/src/forum"
)

type Replies struct {
	eng       *forum.Engine
	sanitizer *bluemonday.Policy
}

func NewReplies(eng *forum.Engine) Replies {
	return Replies{eng: eng, sanitizer: newContentSanitizer()}
}

func (h Replies) Create(c *gin.Context) {
	var req struct {
		ThreadID      uint64  `json:"threadId" binding:"required"`
		Content       string  `json:"content" binding:"required,max=8192"`
		ParentReplyID *uint64 `json:"parentReplyId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	req.Content = h.sanitizer.Sanitize(req.Content)
	if !utf8.ValidString(req.Content) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid characters in input"})
		return
	}

	id, err := h.eng.CreateReply(c.GetString("addr"), req.ThreadID, req.Content, req.ParentReplyID)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h Replies) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	r, ok := h.eng.GetReply(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"err": "reply not found"})
		return
	}
	out := gin.H{
		"id":           r.ID,
		"threadId":     r.ThreadID,
		"author":       r.Author,
		"content":      r.Content,
		"createdAt":    r.CreatedAt,
		"upvotes":      r.Upvotes,
		"downvotes":    r.Downvotes,
		"tipsReceived": r.TipsReceived,
	}
	if r.ParentReplyID != nil {
		out["parentReplyId"] = *r.ParentReplyID
	}
	c.JSON(http.StatusOK, out)
}
