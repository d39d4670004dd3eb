package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	interf "github.com/glkeru/cardfee/internal/interfaces"
	models "github.com/glkeru/cardfee/internal/models"
	services "github.com/glkeru/cardfee/internal/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WaiverHandler struct {
	router  *mux.Router
	service interf.WaiverService
	rules   interf.RuleStorage
	logger  *zap.Logger
	now     func() time.Time
}

type EvaluateRequest struct {
	Rules          []models.WaiverRule      `json:"rules"`
	Snapshots      []models.MetricsSnapshot `json:"snapshots"`
	BaseFee        decimal.Decimal          `json:"base_fee"`
	EvaluationDate Date                     `json:"evaluation_date"`
}

// Date принимает YYYY-MM-DD или RFC3339
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("evaluation_date must be YYYY-MM-DD or RFC3339: %w", err)
	}
	d.Time = t
	return nil
}

type CardEvaluationResponse struct {
	Record   models.FeeRecord      `json:"record"`
	Decision models.WaiverDecision `json:"decision"`
}

func NewHandler(service interf.WaiverService, rules interf.RuleStorage, logger *zap.Logger) *WaiverHandler {
	router := mux.NewRouter()
	handler := &WaiverHandler{router, service, rules, logger, time.Now}
	router.Use(MiddlewareLog(logger))
	router.HandleFunc("/evaluate", handler.EvaluateHandler).Methods(http.MethodPost)
	router.HandleFunc("/cards/{id}/evaluate", handler.EvaluateCardHandler).Methods(http.MethodPost)
	router.HandleFunc("/cards/{id}/preview", handler.PreviewHandler).Methods(http.MethodGet)
	router.HandleFunc("/cards/{id}/rules", handler.GetRulesHandler).Methods(http.MethodGet)
	router.HandleFunc("/cards/{id}/fees/{year}/paid", handler.MarkPaidHandler).Methods(http.MethodPost)
	router.HandleFunc("/cards/{id}/snapshots", handler.InvalidateSnapshotsHandler).Methods(http.MethodDelete)
	router.HandleFunc("/rules", handler.SaveRuleHandler).Methods(http.MethodPost)
	router.HandleFunc("/rules/{id}", handler.GetRuleHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return handler
}

func (h *WaiverHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *WaiverHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// Расчет по переданным правилам и снимкам, без обращения к хранилищам
func (h *WaiverHandler) EvaluateHandler(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()
	var body EvaluateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.Log("Unmarshal", "EvaluateHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	if body.EvaluationDate.IsZero() {
		body.EvaluationDate.Time = h.now()
	}

	decision, err := h.service.Evaluate(body.Rules, body.Snapshots, body.BaseFee, body.EvaluationDate.Time)
	if err != nil {
		h.writeError(w, "EvaluateHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, decision)
}

// Решение по карте с сохранением записи о плате
func (h *WaiverHandler) EvaluateCardHandler(w http.ResponseWriter, req *http.Request) {
	cardID := mux.Vars(req)["id"]
	feeYear, date, err := h.yearAndDate(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, decision, err := h.service.EvaluateCard(req.Context(), cardID, feeYear, date)
	if err != nil {
		h.writeError(w, "EvaluateCardHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, CardEvaluationResponse{record, decision})
}

// Предварительный расчет, ничего не сохраняет
func (h *WaiverHandler) PreviewHandler(w http.ResponseWriter, req *http.Request) {
	cardID := mux.Vars(req)["id"]
	feeYear, date, err := h.yearAndDate(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	decision, err := h.service.Preview(req.Context(), cardID, feeYear, date)
	if err != nil {
		h.writeError(w, "PreviewHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, decision)
}

// Правила карты
func (h *WaiverHandler) GetRulesHandler(w http.ResponseWriter, req *http.Request) {
	rules, err := h.rules.GetRules(req.Context(), mux.Vars(req)["id"])
	if err != nil {
		h.writeError(w, "GetRulesHandler", err)
		return
	}
	if rules == nil {
		rules = []models.WaiverRule{}
	}
	h.writeJSON(w, http.StatusOK, rules)
}

// Получить правило
func (h *WaiverHandler) GetRuleHandler(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		http.Error(w, "Rule not found", http.StatusNotFound)
		return
	}
	rule, err := h.rules.GetRule(req.Context(), id)
	if err != nil {
		h.writeError(w, "GetRuleHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rule)
}

// Создать/обновить правило; правило, которое не компилируется, не сохраняется
func (h *WaiverHandler) SaveRuleHandler(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()
	var rule models.WaiverRule
	if err := json.NewDecoder(req.Body).Decode(&rule); err != nil {
		h.Log("Unmarshal", "SaveRuleHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	if rule.CardID == "" {
		http.Error(w, "card_id is required", http.StatusBadRequest)
		return
	}
	if rule.RuleGroupID != "" && rule.LogicalOperator != models.OperatorAND && rule.LogicalOperator != models.OperatorOR {
		http.Error(w, "grouped rule requires logical_operator AND or OR", http.StatusBadRequest)
		return
	}
	if _, err := services.CompileCondition(rule); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.rules.SaveRule(req.Context(), rule)
	if err != nil {
		h.writeError(w, "SaveRuleHandler", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, saved)
}

// Оплата годовой платы
func (h *WaiverHandler) MarkPaidHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	feeYear, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "Fee year is not correct", http.StatusBadRequest)
		return
	}

	record, err := h.service.MarkPaid(req.Context(), vars["id"], feeYear, h.now())
	if err != nil {
		h.writeError(w, "MarkPaidHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, record)
}

// Сброс кэша снимков после поздних транзакций
func (h *WaiverHandler) InvalidateSnapshotsHandler(w http.ResponseWriter, req *http.Request) {
	feeYear, err := strconv.Atoi(req.URL.Query().Get("fee_year"))
	if err != nil {
		http.Error(w, "fee_year is required", http.StatusBadRequest)
		return
	}
	err = h.service.InvalidateSnapshots(req.Context(), mux.Vars(req)["id"], feeYear)
	if err != nil {
		h.writeError(w, "InvalidateSnapshotsHandler", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fee_year обязателен, date (YYYY-MM-DD) по умолчанию сегодня
func (h *WaiverHandler) yearAndDate(req *http.Request) (int, time.Time, error) {
	query := req.URL.Query()
	feeYear, err := strconv.Atoi(query.Get("fee_year"))
	if err != nil || feeYear < 1 {
		return 0, time.Time{}, fmt.Errorf("fee_year is required")
	}
	date := h.now()
	if raw := query.Get("date"); raw != "" {
		date, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			return 0, time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
		}
	}
	return feeYear, date, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrInvalidRuleConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidTransition):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (h *WaiverHandler) writeError(w http.ResponseWriter, service string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.Log("Request failed", service, err)
	}
	http.Error(w, err.Error(), status)
}

func (h *WaiverHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		h.Log("Marshal", "writeJSON", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(j)
}
