package validate

import (
	"testing"

	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/dto"
)

func fieldsOf(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestPredictionRules(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreatePredictionRequest
		wantErr []string
	}{
		{
			name: "valid",
			req:  dto.CreatePredictionRequest{Question: "Will it rain?", Category: "weather", ExpiryTime: "2099-01-01T00:00:00Z"},
		},
		{
			name:    "missing question",
			req:     dto.CreatePredictionRequest{Category: "weather", ExpiryTime: "2099-01-01T00:00:00Z"},
			wantErr: []string{"question"},
		},
		{
			name:    "missing category",
			req:     dto.CreatePredictionRequest{Question: "Will it rain?", ExpiryTime: "2099-01-01T00:00:00Z"},
			wantErr: []string{"category"},
		},
		{
			name:    "bad expiry",
			req:     dto.CreatePredictionRequest{Question: "Will it rain?", Category: "weather", ExpiryTime: "not-a-date"},
			wantErr: []string{"expiryTime"},
		},
		{
			name:    "everything missing keeps declaration order",
			req:     dto.CreatePredictionRequest{},
			wantErr: []string{"question", "category", "expiryTime"},
		},
		{
			name:    "whitespace only question",
			req:     dto.CreatePredictionRequest{Question: "   ", Category: "weather", ExpiryTime: "2099-01-01T00:00:00Z"},
			wantErr: []string{"question"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Prediction(tt.req)
			got := fieldsOf(errs)
			if len(got) != len(tt.wantErr) {
				t.Fatalf("got errors for %v, want %v", got, tt.wantErr)
			}
			for i := range got {
				if got[i] != tt.wantErr[i] {
					t.Errorf("error %d: got field %q, want %q", i, got[i], tt.wantErr[i])
				}
			}
			for _, e := range errs {
				if e.Message == "" {
					t.Errorf("field %q has empty message", e.Field)
				}
			}
		})
	}
}

func TestOpinionRules(t *testing.T) {
	valid := dto.SubmitOpinionRequest{PredictionID: "p1", UserID: "u1", Opinion: "Yes", Amount: float64(10)}

	tests := []struct {
		name    string
		mutate  func(r *dto.SubmitOpinionRequest)
		wantErr []string
	}{
		{name: "valid", mutate: func(r *dto.SubmitOpinionRequest) {}},
		{
			name:    "missing predictionId",
			mutate:  func(r *dto.SubmitOpinionRequest) { r.PredictionID = "" },
			wantErr: []string{"predictionId"},
		},
		{
			name:    "missing userId",
			mutate:  func(r *dto.SubmitOpinionRequest) { r.UserID = "" },
			wantErr: []string{"userId"},
		},
		{
			name:    "opinion outside enum",
			mutate:  func(r *dto.SubmitOpinionRequest) { r.Opinion = "Maybe" },
			wantErr: []string{"opinion"},
		},
		{
			name:    "opinion case sensitive",
			mutate:  func(r *dto.SubmitOpinionRequest) { r.Opinion = "yes" },
			wantErr: []string{"opinion"},
		},
		{
			name:   "numeric string amount is fine",
			mutate: func(r *dto.SubmitOpinionRequest) { r.Amount = "42" },
		},
		{
			name:    "non numeric amount",
			mutate:  func(r *dto.SubmitOpinionRequest) { r.Amount = "ten" },
			wantErr: []string{"amount"},
		},
		{
			name:    "missing amount",
			mutate:  func(r *dto.SubmitOpinionRequest) { r.Amount = nil },
			wantErr: []string{"amount"},
		},
		{
			name:    "boolean amount",
			mutate:  func(r *dto.SubmitOpinionRequest) { r.Amount = true },
			wantErr: []string{"amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			got := fieldsOf(Opinion(req))
			if len(got) != len(tt.wantErr) {
				t.Fatalf("got errors for %v, want %v", got, tt.wantErr)
			}
			for i := range got {
				if got[i] != tt.wantErr[i] {
					t.Errorf("error %d: got field %q, want %q", i, got[i], tt.wantErr[i])
				}
			}
		})
	}
}

func TestParseISOTime(t *testing.T) {
	valid := []string{
		"2099-01-01T00:00:00Z",
		"2025-06-15T10:30:00-03:00",
		"2025-06-15T10:30:00",
		"2025-06-15",
	}
	for _, s := range valid {
		if _, err := ParseISOTime(s); err != nil {
			t.Errorf("ParseISOTime(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "not-a-date", "15/06/2025", "2025-13-45T00:00:00Z"}
	for _, s := range invalid {
		if _, err := ParseISOTime(s); err == nil {
			t.Errorf("ParseISOTime(%q) = nil error, want error", s)
		}
	}
}

func TestNumericAmount(t *testing.T) {
	tests := []struct {
		in      any
		want    float64
		wantErr bool
	}{
		{in: float64(42), want: 42},
		{in: float64(0.5), want: 0.5},
		{in: "42", want: 42},
		{in: " 3.5 ", want: 3.5},
		{in: "-1", want: -1},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: nil, wantErr: true},
		{in: true, wantErr: true},
	}

	for _, tt := range tests {
		got, err := NumericAmount(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NumericAmount(%v) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NumericAmount(%v) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NumericAmount(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
