package webserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/stake-plus/stakeboard/src/config"
	"github.com/stake-plus/stakeboard/src/forum"
)

const testSecret = "test-secret"

type env struct {
	router *gin.Engine
	eng    *forum.Engine
	ledger *forum.MemoryLedger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ledger := forum.NewMemoryLedger()
	st := forum.NewState(forum.Config{Owner: "5Owner"})
	now := uint64(1000)
	eng := forum.NewEngine(st, ledger, forum.ClockFunc(func() uint64 { return now }), nil)

	// Auth routes need redis; the secured routes under test never touch
	// it, so an unconnected client is fine.
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	router := New(config.Config{JWTSecret: testSecret}, rdb, eng)
	return &env{router: router, eng: eng, ledger: ledger}
}

func (e *env) stakeUp(t *testing.T, addr string) {
	t.Helper()
	e.ledger.Credit(addr, forum.DefaultMinStakeAmount)
	require.NoError(t, e.eng.Stake(addr, forum.DefaultMinStakeAmount, 0))
}

func (e *env) do(t *testing.T, method, path, addr, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if addr != "" {
		tok, err := issueJWT(addr, []byte(testSecret))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestCreateThreadRequiresAuth(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/v1/threads", "", `{"title":"t","content":"c"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndFetchThread(t *testing.T) {
	e := newEnv(t)
	e.stakeUp(t, "5Alice")

	w := e.do(t, http.MethodPost, "/v1/threads", "5Alice", `{"title":"Hello","content":"World"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":1}`, w.Body.String())

	w = e.do(t, http.MethodGet, "/v1/threads/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"title":"Hello"`)
	require.Contains(t, w.Body.String(), `"author":"5Alice"`)

	w = e.do(t, http.MethodGet, "/v1/threads/99", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateThreadUnstakedForbidden(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/v1/threads", "5Alice", `{"title":"t","content":"c"}`)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), string(forum.CodeInsufficientStake))
}

func TestScriptTagsStripped(t *testing.T) {
	e := newEnv(t)
	e.stakeUp(t, "5Alice")

	w := e.do(t, http.MethodPost, "/v1/threads", "5Alice",
		`{"title":"safe","content":"hi <script>alert(1)</script>there"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	th, ok := e.eng.GetThread(1)
	require.True(t, ok)
	require.NotContains(t, th.Content, "<script>")
}

func TestVoteConflictAndErrorMapping(t *testing.T) {
	e := newEnv(t)
	e.stakeUp(t, "5Alice")
	w := e.do(t, http.MethodPost, "/v1/threads", "5Alice", `{"title":"t","content":"c"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	body := `{"targetKind":"thread","targetId":1,"upvote":true}`
	w = e.do(t, http.MethodPost, "/v1/votes", "5Bob", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodPost, "/v1/votes", "5Bob", body)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), string(forum.CodeAlreadyVoted))

	w = e.do(t, http.MethodGet, "/v1/votes/thread/1", "5Bob", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"voted":true`)
}

func TestPurchaseNonPremiumForbidden(t *testing.T) {
	e := newEnv(t)
	e.stakeUp(t, "5Alice")
	w := e.do(t, http.MethodPost, "/v1/threads", "5Alice", `{"title":"t","content":"c"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodPost, "/v1/threads/1/access", "5Bob", "")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), string(forum.CodeThreadNotPremium))
}

func TestPremiumPurchaseOverHTTP(t *testing.T) {
	e := newEnv(t)
	e.stakeUp(t, "5Alice")
	w := e.do(t, http.MethodPost, "/v1/threads", "5Alice",
		`{"title":"paid","content":"c","isPremium":true,"premiumPrice":1000}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Short balance surfaces as 402.
	w = e.do(t, http.MethodPost, "/v1/threads/1/access", "5Bob", "")
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	e.ledger.Credit("5Bob", 1000)
	w = e.do(t, http.MethodPost, "/v1/threads/1/access", "5Bob", "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodGet, "/v1/threads/1/access", "5Bob", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"hasAccess":true}`, w.Body.String())
}

func TestAdminSettingOwnerOnly(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPut, "/v1/admin/settings", "5Alice",
		`{"name":"min_stake_amount","value":"500"}`)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodPut, "/v1/admin/settings", "5Owner",
		`{"name":"min_stake_amount","value":"500"}`)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, uint64(500), e.eng.GetConfig().MinStakeAmount)

	w = e.do(t, http.MethodPut, "/v1/admin/settings", "5Owner",
		`{"name":"min_stake_amount","value":"abc"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPut, "/v1/admin/settings", "5Owner",
		`{"name":"nope","value":"1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReputationRead(t *testing.T) {
	e := newEnv(t)
	e.stakeUp(t, "5Alice")
	w := e.do(t, http.MethodPost, "/v1/threads", "5Alice", `{"title":"t","content":"c"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodGet, "/v1/users/5Alice/reputation", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"score":5`)
	require.Contains(t, w.Body.String(), `"threadsCreated":1`)
}
