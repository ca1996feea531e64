package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/jredh-dev/missionexploit/internal/challenge"
	"github.com/jredh-dev/missionexploit/services/exploit/config"
	"github.com/jredh-dev/missionexploit/services/exploit/internal/receipt"
	"github.com/jredh-dev/missionexploit/services/exploit/internal/validator"
)

// MsgServerError is the only detail a caller ever sees for an internal failure.
const MsgServerError = "server error occurred."

var errNotObject = errors.New("request body is not a JSON object")

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	validator *validator.Validator
	receipts  *receipt.Service
	challenge config.ChallengeConfig
	now       func() time.Time
}

// New creates a new Handler. receipts may be nil.
func New(cfg config.ChallengeConfig, v *validator.Validator, receipts *receipt.Service) *Handler {
	return &Handler{
		validator: v,
		receipts:  receipts,
		challenge: cfg,
		now:       time.Now,
	}
}

type submitResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Flag    string `json:"flag,omitempty"`
	Receipt string `json:"receipt,omitempty"`
}

// Submit handles POST /submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(r.Body)
	if err != nil && !errors.Is(err, errNotObject) {
		log.Printf("submit: decode failed: %v", err)
		ServerError(w, r)
		return
	}

	// A missing, null, or non-string plaintext is the same as an empty one.
	var plaintext string
	if raw, ok := body["plaintext"]; ok {
		if err := json.Unmarshal(raw, &plaintext); err != nil {
			plaintext = ""
		}
	}

	res := h.validator.Validate(plaintext)
	resp := submitResp{
		Success: res.OK,
		Message: res.Message,
		Flag:    res.Reward,
	}
	if res.OK && h.receipts.Enabled() {
		tok, err := h.receipts.Issue(res.AttemptID, h.challenge.TargetDigest)
		if err != nil {
			log.Printf("submit: id=%s receipt failed: %v", res.AttemptID, err)
		} else {
			resp.Receipt = tok
		}
	}

	jsonOK(w, http.StatusOK, resp)
}

type healthResp struct {
	Status      string    `json:"status"`
	Timestamp   string    `json:"timestamp"`
	Environment healthEnv `json:"environment"`
}

type healthEnv struct {
	FlagSet bool `json:"flag_set"`
	HashSet bool `json:"hash_set"`
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, http.StatusOK, healthResp{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Environment: healthEnv{
			FlagSet: h.challenge.FlagSet,
			HashSet: h.challenge.HashSet,
		},
	})
}

type hashReq struct {
	Text string `json:"text"`
}

type hashResp struct {
	Input string `json:"input"`
	MD5   string `json:"md5"`
}

// Hash handles POST /hash. The text is digested as given, without the XOR step.
func (h *Handler) Hash(w http.ResponseWriter, r *http.Request) {
	var req hashReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}
	jsonOK(w, http.StatusOK, hashResp{Input: req.Text, MD5: challenge.Digest(req.Text)})
}

type verifyReq struct {
	Receipt string `json:"receipt"`
}

// Verify handles POST /verify
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	claims, err := h.receipts.Verify(req.Receipt)
	if err != nil {
		msg := "invalid receipt"
		if errors.Is(err, receipt.ErrDisabled) {
			msg = err.Error()
		}
		jsonOK(w, http.StatusOK, receipt.VerifyResponse{Error: msg})
		return
	}

	resp := receipt.VerifyResponse{Valid: true, AttemptID: claims.Subject}
	if claims.IssuedAt != nil {
		issued := claims.IssuedAt.UTC()
		resp.IssuedAt = &issued
	}
	jsonOK(w, http.StatusOK, resp)
}

// ServerError writes the generic 500 reply. It is also the panic handler for
// the router, so it must not depend on request state.
func ServerError(w http.ResponseWriter, _ *http.Request) {
	jsonOK(w, http.StatusInternalServerError, submitResp{Success: false, Message: MsgServerError})
}

// decodeObject reads a single JSON value. An empty body counts as an empty
// object. A well-formed value that is not an object returns errNotObject with
// a nil map; anything unparsable is a plain error.
func decodeObject(body io.Reader) (map[string]json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errNotObject
	}
	return obj, nil
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
