package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stakeboard/src/forum"
)

// abortWith maps an engine error code to an HTTP status. Every rejection
// reaches the client as {err, code}.
func abortWith(c *gin.Context, err error) {
	code := forum.CodeOf(err)
	status := http.StatusBadRequest
	switch code {
	case forum.CodeNotFound:
		status = http.StatusNotFound
	case forum.CodeOwnerOnly, forum.CodeUnauthorized, forum.CodeInsufficientStake, forum.CodeThreadNotPremium:
		status = http.StatusForbidden
	case forum.CodeThreadLocked, forum.CodeAlreadyVoted:
		status = http.StatusConflict
	case forum.CodeInsufficientBalance:
		status = http.StatusPaymentRequired
	case forum.CodeInvalidAmount, forum.CodeInvalidTip, forum.CodeSelfTip, forum.CodeInvalidParentReply:
		status = http.StatusBadRequest
	case forum.CodeUnknown:
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"err": err.Error(), "code": code})
}
