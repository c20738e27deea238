package slot

import (
	"net/http"

	"lion_slot/internal/api"
	dto "lion_slot/internal/api/dto/slot"
	"lion_slot/internal/converter"
	"lion_slot/internal/service"
	"lion_slot/pkg/req"
	"lion_slot/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SlotService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SlotService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
		log:  deps.Log.With(zap.String("component", "api/slot")),
	}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSlotSpin(payload))
	if err != nil {
		api.WriteError(w, h.log, "spin", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) PayTable(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPayTableResponse(h.serv.PayTable()))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
