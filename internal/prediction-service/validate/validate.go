package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/dto"
)

// FieldError é uma falha de validação de um campo do corpo da requisição
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Prediction valida o corpo do POST /prediction; devolve a lista ordenada de
// erros de campo, vazia quando o corpo está ok
func Prediction(r dto.CreatePredictionRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(r.Question) == "" {
		errs = append(errs, FieldError{Field: "question", Message: "Question is required"})
	}
	if strings.TrimSpace(r.Category) == "" {
		errs = append(errs, FieldError{Field: "category", Message: "Category is required"})
	}
	if _, err := ParseISOTime(r.ExpiryTime); err != nil {
		errs = append(errs, FieldError{Field: "expiryTime", Message: "Expiry time must be a valid date"})
	}

	return errs
}

// Opinion valida o corpo do POST /opinion
func Opinion(r dto.SubmitOpinionRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(r.PredictionID) == "" {
		errs = append(errs, FieldError{Field: "predictionId", Message: "Prediction ID is required"})
	}
	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, FieldError{Field: "userId", Message: "User ID is required"})
	}
	if r.Opinion != "Yes" && r.Opinion != "No" {
		errs = append(errs, FieldError{Field: "opinion", Message: `Opinion must be either "Yes" or "No"`})
	}
	if _, err := NumericAmount(r.Amount); err != nil {
		errs = append(errs, FieldError{Field: "amount", Message: "Amount must be a number"})
	}

	return errs
}

// ParseISOTime aceita data ISO-8601 com offset, sem offset ou só a data
func ParseISOTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date: %q", s)
}

// NumericAmount coage o valor cru do JSON para float64; aceita número ou
// string numérica, igual ao contrato do endpoint
func NumericAmount(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
