package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stakeboard/src/data"
	"github.com/stake-plus/stakeboard/src/forum"
)

type Admin struct {
	eng *forum.Engine
}

func NewAdmin(eng *forum.Engine) Admin { return Admin{eng: eng} }

// UpdateSetting mutates one protocol parameter. The engine enforces the
// owner check; the journal persists the new value to the settings table.
func (h Admin) UpdateSetting(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	caller := c.GetString("addr")
	var err error
	switch req.Name {
	case data.SettingMinStakeAmount:
		var n uint64
		if n, err = strconv.ParseUint(req.Value, 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"err": "value must be an unsigned integer"})
			return
		}
		err = h.eng.SetMinStakeAmount(caller, n)
	case data.SettingPlatformFeeBps:
		var n uint64
		if n, err = strconv.ParseUint(req.Value, 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"err": "value must be an unsigned integer"})
			return
		}
		err = h.eng.SetPlatformFeeRate(caller, n)
	case data.SettingPlatformTreasury:
		err = h.eng.SetPlatformTreasury(caller, req.Value)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"err": "unknown setting " + req.Name})
		return
	}
	if err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
