package webserver

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/stake-plus/stakeboard/src/forum"
)

type Threads struct {
	eng       *forum.Engine
	sanitizer *bluemonday.Policy
}

func NewThreads(eng *forum.Engine) Threads {
	return Threads{eng: eng, sanitizer: newContentSanitizer()}
}

// newContentSanitizer builds the strict markdown policy applied to every
// piece of user text before it reaches the ledger.
func newContentSanitizer() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AllowElements("p", "br", "strong", "em", "code", "pre", "blockquote")
	p.AllowElements("ul", "ol", "li")
	p.AllowAttrs("href").OnElements("a")
	p.RequireParseableURLs(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoFollowOnLinks(true)
	return p
}

func (h Threads) Create(c *gin.Context) {
	var req struct {
		Title        string `json:"title" binding:"required,max=1024"`
		Content      string `json:"content" binding:"required,max=16384"`
		IsPremium    bool   `json:"isPremium"`
		PremiumPrice uint64 `json:"premiumPrice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	req.Title = h.sanitizer.Sanitize(req.Title)
	req.Content = h.sanitizer.Sanitize(req.Content)
	if !utf8.ValidString(req.Title) || !utf8.ValidString(req.Content) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid characters in input"})
		return
	}

	id, err := h.eng.CreateThread(c.GetString("addr"), req.Title, req.Content, req.IsPremium, req.PremiumPrice)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h Threads) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	t, ok := h.eng.GetThread(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"err": "thread not found"})
		return
	}
	c.JSON(http.StatusOK, threadJSON(t))
}

func (h Threads) Lock(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.eng.LockThread(c.GetString("addr"), id); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h Threads) Boost(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	b := h.eng.GetThreadBoost(id)
	contributors := b.Contributors
	if contributors == nil {
		contributors = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"threadId":     b.ThreadID,
		"amount":       b.Amount,
		"contributors": contributors,
	})
}

func (h Threads) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"threads": h.eng.GetThreadCount(),
		"replies": h.eng.GetReplyCount(),
	})
}

func threadJSON(t forum.Thread) gin.H {
	return gin.H{
		"id":           t.ID,
		"author":       t.Author,
		"title":        t.Title,
		"content":      t.Content,
		"isPremium":    t.IsPremium,
		"premiumPrice": t.PremiumPrice,
		"createdAt":    t.CreatedAt,
		"upvotes":      t.Upvotes,
		"downvotes":    t.Downvotes,
		"tipsReceived": t.TipsReceived,
		"isLocked":     t.IsLocked,
		"replyCount":   t.ReplyCount,
	}
}
