// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package apperr define a taxonomia de erros dos handlers e o mapeamento
// de cada categoria para um status HTTP.
//
// Toda falha dentro de um handler vira um destes tipos antes de chegar à
// borda; nada propaga como fault não tratado. Nenhum erro é re-tentado:
// todos são terminais para a invocação, e a política de retry pertence ao
// frontend.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError indica entrada malformada ou campo obrigatório ausente (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError indica token ausente ou indecifrável (401).
//
// É a falha da fronteira de autenticação, distinta de ForbiddenError:
// aqui o chamador nem chegou a provar quem é.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap retorna o erro original encapsulado.
func (e *AuthError) Unwrap() error { return e.Err }

// ForbiddenError indica chamador autenticado porém sem posse do recurso (403).
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// ConfigurationError indica configuração de deploy ausente ou inválida,
// como nome de bucket ou tabela vazio (500).
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// DependencyError indica falha na chamada externa (DynamoDB ou S3).
//
// A mensagem upstream é exposta para diagnóstico, mas nunca detalhes
// internos além dela (500).
type DependencyError struct {
	Message string
	Err     error
}

func (e *DependencyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DependencyError) Unwrap() error { return e.Err }

// Construtores de conveniência usados pelos handlers.

func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func Auth(message string, err error) error {
	return &AuthError{Message: message, Err: err}
}

func Forbidden(format string, args ...any) error {
	return &ForbiddenError{Message: fmt.Sprintf(format, args...)}
}

func Configuration(message string, err error) error {
	return &ConfigurationError{Message: message, Err: err}
}

func Dependency(message string, err error) error {
	return &DependencyError{Message: message, Err: err}
}

// StatusOf mapeia um erro da taxonomia para o status HTTP correspondente.
// Erros fora da taxonomia caem em 500, mantendo a borda sem fault.
func StatusOf(err error) int {
	var (
		validation *ValidationError
		auth       *AuthError
		forbidden  *ForbiddenError
	)

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &auth):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
