package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	authDTO "lion_slot/internal/api/dto/auth"
	slotDTO "lion_slot/internal/api/dto/slot"
	walletDTO "lion_slot/internal/api/dto/wallet"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type client struct {
	t       *testing.T
	handler http.Handler
	token   string
	cookies []*http.Cookie
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		r.Header.Set("Authorization", "Bearer "+c.token)
	}
	for _, ck := range c.cookies {
		r.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, r)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return out
}

func TestRouterPlayerFlowOnFileStore(t *testing.T) {
	t.Setenv("STORAGE", "file")
	t.Setenv("STORE_FILE", filepath.Join(t.TempDir(), "users.json"))
	t.Setenv("ACCESS_TOKEN", "test-secret")
	t.Setenv("LOG_MODE", "dev")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FILE", "false")

	sp := newServiceProvider()
	defer sp.Close()
	c := &client{t: t, handler: sp.Router(context.Background())}

	// Регистрация с бонусом
	w := c.do(http.MethodPost, "/auth/register", `{"login":"alice","password":"secret","cpf":"12345678901"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	c.token = decodeBody[authDTO.TokenResponse](t, w).AccessToken
	c.cookies = w.Result().Cookies()
	if c.token == "" || len(c.cookies) != 2 {
		t.Fatalf("token %q, cookies %d", c.token, len(c.cookies))
	}

	w = c.do(http.MethodPost, "/auth/register", `{"login":"alice","password":"secret"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d", w.Code)
	}
	w = c.do(http.MethodPost, "/auth/register", `{"login":"bob","password":"secret","cpf":"123"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid cpf status = %d", w.Code)
	}

	w = c.do(http.MethodGet, "/wallet/balance", "")
	if got := decodeBody[walletDTO.BalanceResponse](t, w).Balance; !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("initial balance = %s, want 100", got)
	}

	// Раунд: balance = 100 - 1 + prize
	w = c.do(http.MethodPost, "/slot/spin", `{"bet":"1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("spin status = %d, body %s", w.Code, w.Body.String())
	}
	round := decodeBody[slotDTO.SpinResponse](t, w)
	want := decimal.NewFromInt(99).Add(round.Prize)
	if !round.Balance.Equal(want) {
		t.Fatalf("balance after spin = %s, want %s", round.Balance, want)
	}

	w = c.do(http.MethodPost, "/slot/spin", `{"bet":"100000"}`)
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("oversized bet status = %d", w.Code)
	}

	w = c.do(http.MethodPost, "/wallet/deposit", `{"amount":"50"}`)
	if got := decodeBody[walletDTO.BalanceResponse](t, w).Balance; !got.Equal(want.Add(decimal.NewFromInt(50))) {
		t.Fatalf("balance after deposit = %s", got)
	}

	w = c.do(http.MethodGet, "/wallet/history?limit=10", "")
	history := decodeBody[walletDTO.HistoryResponse](t, w)
	if len(history.Spins) != 1 {
		t.Fatalf("spins in history = %d, want 1", len(history.Spins))
	}
	// bonus, wager, [prize], deposit
	wantTxs := 3
	if round.Won {
		wantTxs = 4
	}
	if len(history.Transactions) != wantTxs {
		t.Fatalf("transactions = %d, want %d", len(history.Transactions), wantTxs)
	}
	if history.Transactions[0].Type != "deposit" || history.Transactions[wantTxs-1].Type != "bonus" {
		t.Fatalf("transaction order = %+v", history.Transactions)
	}

	w = c.do(http.MethodGet, "/wallet/history?limit=x", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad limit status = %d", w.Code)
	}

	w = c.do(http.MethodGet, "/slot/paytable", "")
	if lines := decodeBody[[]slotDTO.PayLine](t, w); len(lines) != 9 {
		t.Fatalf("paytable lines = %d, want 9", len(lines))
	}
	w = c.do(http.MethodGet, "/slot/stats", "")
	if st := decodeBody[slotDTO.StatsResponse](t, w); st.TotalSpins != 1 {
		t.Fatalf("stats spins = %d, want 1", st.TotalSpins)
	}

	w = c.do(http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "slot_rounds_total") {
		t.Fatalf("metrics status = %d", w.Code)
	}

	w = c.do(http.MethodPost, "/auth/refresh", "")
	if w.Code != http.StatusOK {
		t.Fatalf("refresh status = %d, body %s", w.Code, w.Body.String())
	}

	w = c.do(http.MethodPost, "/auth/logout", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d", w.Code)
	}
	w = c.do(http.MethodPost, "/auth/refresh", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("refresh after logout status = %d", w.Code)
	}

	// Без токена закрытые маршруты недоступны
	c.token = ""
	w = c.do(http.MethodPost, "/slot/spin", `{"bet":"1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous spin status = %d", w.Code)
	}

	w = c.do(http.MethodPost, "/auth/login", `{"login":"alice","password":"nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d", w.Code)
	}
	w = c.do(http.MethodPost, "/auth/login", `{"login":"alice","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d", w.Code)
	}
}
