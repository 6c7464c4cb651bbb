package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/dto"
	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/service"
	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/validate"
)

// Server expõe os três endpoints REST do prediction-service
type Server struct {
	log         *zap.Logger
	predictions *service.PredictionService
	opinions    *service.OpinionService
	echoErrors  bool // fora de prod, o recovery ecoa a mensagem interna no corpo
	limiter     *rate.Limiter
}

func NewServer(log *zap.Logger, p *service.PredictionService, o *service.OpinionService, echoErrors bool, limiter *rate.Limiter) *Server {
	return &Server{log: log, predictions: p, opinions: o, echoErrors: echoErrors, limiter: limiter}
}

// Router retorna o roteador com os endpoints e a cadeia de middlewares
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recovery)
	r.Use(s.logging)
	r.Use(cors)
	r.Use(s.rateLimit)

	r.Post("/prediction", s.createPrediction) // Cria uma prediction
	r.Get("/predictions", s.listPredictions)  // Lista predictions ativas
	r.Post("/opinion", s.submitOpinion)       // Registra a opinião de um usuário
	return r
}

// createPrediction trata POST /prediction
func (s *Server) createPrediction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []validate.FieldError{{Field: "body", Message: "Request body must be valid JSON"}})
		return
	}

	if errs := validate.Prediction(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	expiry, _ := validate.ParseISOTime(req.ExpiryTime) // já validado

	id, err := s.predictions.Create(r.Context(), req.Question, req.Category, expiry)
	if err != nil {
		s.log.Error("create prediction", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create prediction"})
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreatePredictionResponse{
		PredictionID: id,
		Message:      "Prediction created successfully",
	})
}

// listPredictions trata GET /predictions, com filtro opcional ?category=
func (s *Server) listPredictions(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	preds, err := s.predictions.ListActive(r.Context(), category)
	if err != nil {
		s.log.Error("list predictions", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve predictions"})
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPredictionsResponse{Predictions: preds})
}

// submitOpinion trata POST /opinion; cada erro da cadeia de pré-condições
// tem status e mensagem próprios
func (s *Server) submitOpinion(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitOpinionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []validate.FieldError{{Field: "body", Message: "Request body must be valid JSON"}})
		return
	}

	if errs := validate.Opinion(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	amount, _ := validate.NumericAmount(req.Amount) // já validado

	id, err := s.opinions.Submit(r.Context(), req.PredictionID, req.UserID, req.Opinion, amount)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrPredictionNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Prediction not found"})
		return
	case errors.Is(err, service.ErrPredictionInactive):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "This prediction is no longer active"})
		return
	case errors.Is(err, service.ErrPredictionExpired):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "This prediction has expired"})
		return
	case errors.Is(err, service.ErrDuplicateOpinion):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "You have already submitted an opinion for this prediction"})
		return
	default:
		s.log.Error("submit opinion", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to submit opinion"})
		return
	}

	writeJSON(w, http.StatusCreated, dto.SubmitOpinionResponse{
		OpinionID: id,
		Message:   "Opinion submitted successfully",
	})
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeValidationErrors(w http.ResponseWriter, errs []validate.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}
