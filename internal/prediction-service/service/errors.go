package service

import "errors"

// Erros de regra de negócio do fluxo de opinion; o handler HTTP mapeia cada
// um para seu status e mensagem
var (
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrPredictionInactive = errors.New("prediction no longer active")
	ErrPredictionExpired  = errors.New("prediction expired")
	ErrDuplicateOpinion   = errors.New("opinion already submitted")
)
