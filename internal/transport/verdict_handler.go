package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/repository/clickhouse"
)

// Verdict routes served next to the generated gateway handlers.
const (
	VerdictByHashPath    = "/v1/{network}/blocks/{hash}/verdict"
	VerdictsByHeightPath = "/v1/{network}/heights/{height}/verdicts"
)

// VerdictHandler serves stored block verdicts over REST.
type VerdictHandler struct {
	repo      VerdictReader
	cache     *VerdictCache
	coin      model.Coin
	marshaler gwruntime.Marshaler
	logger    *zap.Logger
}

// NewVerdictHandler builds a VerdictHandler. cache may be nil.
func NewVerdictHandler(repo VerdictReader, cache *VerdictCache, coin model.Coin, logger *zap.Logger) *VerdictHandler {
	return &VerdictHandler{
		repo:      repo,
		cache:     cache,
		coin:      coin,
		marshaler: &gwruntime.JSONBuiltin{},
		logger:    logger,
	}
}

// Register mounts the verdict routes on the gateway mux.
func (h *VerdictHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, VerdictByHashPath, h.VerdictByHash); err != nil {
		return err
	}
	return mux.HandlePath(http.MethodGet, VerdictsByHeightPath, h.VerdictsByHeight)
}

// VerdictByHash writes the verdict recorded for the block hash.
func (h *VerdictHandler) VerdictByHash(w http.ResponseWriter, r *http.Request, params map[string]string) {
	network, ok := h.network(w, params)
	if !ok {
		return
	}
	hash, err := chainhash.NewHashFromStr(params["hash"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid block hash")
		return
	}
	key := hash.String()

	if h.cache != nil {
		if v, hit := h.cache.Get(h.coin, network, key); hit {
			h.write(w, http.StatusOK, v)
			return
		}
	}

	v, err := h.repo.VerdictByHash(r.Context(), h.coin, network, key)
	switch {
	case errors.Is(err, clickhouse.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "verdict not found")
		return
	case err != nil:
		h.logger.Error("load verdict failed", zap.String("hash", key), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "load verdict failed")
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(v); err != nil {
			h.logger.Warn("cache verdict failed", zap.String("hash", key), zap.Error(err))
		}
	}
	h.write(w, http.StatusOK, v)
}

// VerdictsByHeight writes every verdict recorded at the height, newest first.
func (h *VerdictHandler) VerdictsByHeight(w http.ResponseWriter, r *http.Request, params map[string]string) {
	network, ok := h.network(w, params)
	if !ok {
		return
	}
	height, err := strconv.ParseUint(params["height"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid height")
		return
	}

	verdicts, err := h.repo.VerdictsByHeight(r.Context(), h.coin, network, height)
	if err != nil {
		h.logger.Error("load verdicts failed", zap.Uint64("height", height), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "load verdicts failed")
		return
	}
	if len(verdicts) == 0 {
		h.writeError(w, http.StatusNotFound, "verdict not found")
		return
	}
	h.write(w, http.StatusOK, verdicts)
}

func (h *VerdictHandler) network(w http.ResponseWriter, params map[string]string) (model.Network, bool) {
	network := model.Network(params["network"])
	if _, err := bitcoin.ChainParams(network); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return network, true
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *VerdictHandler) writeError(w http.ResponseWriter, code int, msg string) {
	h.write(w, code, errorBody{Error: msg})
}

func (h *VerdictHandler) write(w http.ResponseWriter, code int, body any) {
	raw, err := h.marshaler.Marshal(body)
	if err != nil {
		h.logger.Error("encode response failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(body))
	w.WriteHeader(code)
	if _, err := w.Write(raw); err != nil {
		h.logger.Debug("write response failed", zap.Error(err))
	}
}
