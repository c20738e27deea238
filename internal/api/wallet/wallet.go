package wallet

import (
	"net/http"
	"strconv"

	"lion_slot/internal/api"
	dto "lion_slot/internal/api/dto/wallet"
	"lion_slot/internal/converter"
	"lion_slot/internal/service"
	"lion_slot/pkg/req"
	"lion_slot/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.WalletService
	Log  *zap.Logger
}

type Handler struct {
	serv service.WalletService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
		log:  deps.Log.With(zap.String("component", "api/wallet")),
	}
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, err)
		return
	}

	balance, err := h.serv.Deposit(r.Context(), payload.Amount)
	if err != nil {
		api.WriteError(w, h.log, "deposit", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, err)
		return
	}

	balance, err := h.serv.Withdraw(r.Context(), payload.Amount)
	if err != nil {
		api.WriteError(w, h.log, "withdraw", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.GetBalance(r.Context())
	if err != nil {
		api.WriteError(w, h.log, "balance", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// History ?limit=N, по умолчанию 20
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	history, err := h.serv.History(r.Context(), limit)
	if err != nil {
		api.WriteError(w, h.log, "history", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(*history))
}
