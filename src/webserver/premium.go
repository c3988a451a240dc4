package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stakeboard/src/forum"
)

type Premium struct {
	eng *forum.Engine
}

func NewPremium(eng *forum.Engine) Premium { return Premium{eng: eng} }

func (h Premium) Purchase(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.eng.PurchasePremiumAccess(c.GetString("addr"), id); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h Premium) Check(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	c.JSON(http.StatusOK, gin.H{
		"hasAccess": h.eng.HasPremiumAccess(id, c.GetString("addr")),
	})
}
