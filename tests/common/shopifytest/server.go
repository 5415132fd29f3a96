//go:build unit || e2e

package shopifytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const (
	OperationListFunctions  = "shopifyFunctions"
	OperationCreateDiscount = "discountAutomaticAppCreate"
)

// Request is one GraphQL call received by the fake.
type Request struct {
	Operation string
	Header    http.Header
	Query     string
	Variables map[string]any
}

type rawResponse struct {
	status int
	body   string
}

// Server is an in-process fake of the Admin GraphQL API.
type Server struct {
	*httptest.Server
	accessToken string

	mu         sync.Mutex
	requests   []Request
	functions  []map[string]any
	createData map[string]any
	overrides  map[string]rawResponse
}

func NewServer(t *testing.T, accessToken string) *Server {
	t.Helper()
	s := &Server{
		accessToken: accessToken,
		overrides:   map[string]rawResponse{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) Endpoint(apiVersion string) string {
	return s.URL + "/admin/api/" + apiVersion + "/graphql.json"
}

func (s *Server) ListFunctionsReturns(nodes ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.functions = nodes
}

// CreateReturns sets the discountAutomaticAppCreate payload.
func (s *Server) CreateReturns(payload map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createData = payload
}

// RespondWith replaces the response of operation with a raw status and body.
func (s *Server) RespondWith(operation string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[operation] = rawResponse{status: status, body: body}
}

// Reset forgets recorded requests and configured responses.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.functions = nil
	s.createData = nil
	s.overrides = map[string]rawResponse{}
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) Count(operation string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Operation == operation {
			n++
		}
	}
	return n
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	operation := ""
	switch {
	case strings.Contains(body.Query, OperationCreateDiscount):
		operation = OperationCreateDiscount
	case strings.Contains(body.Query, OperationListFunctions):
		operation = OperationListFunctions
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Operation: operation,
		Header:    r.Header.Clone(),
		Query:     body.Query,
		Variables: body.Variables,
	})
	override, overridden := s.overrides[operation]
	functions := s.functions
	createData := s.createData
	s.mu.Unlock()

	if r.Header.Get("X-Shopify-Access-Token") != s.accessToken {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"errors": "[API] Invalid API key or access token"})
		return
	}
	if overridden {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(override.status)
		_, _ = w.Write([]byte(override.body))
		return
	}

	switch operation {
	case OperationListFunctions:
		if functions == nil {
			functions = []map[string]any{}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"shopifyFunctions": map[string]any{"nodes": functions}},
		})
	case OperationCreateDiscount:
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{OperationCreateDiscount: createData},
		})
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"errors": []map[string]any{{"message": "unknown operation"}},
		})
	}
}

// CreatedPayload builds a successful discountAutomaticAppCreate payload.
func CreatedPayload(discountID, title, startsAt string) map[string]any {
	return map[string]any{
		"automaticAppDiscount": map[string]any{
			"discountId": discountID,
			"title":      title,
			"startsAt":   startsAt,
		},
		"userErrors": []any{},
	}
}

// RejectedPayload builds a discountAutomaticAppCreate payload with user errors.
func RejectedPayload(messages ...string) map[string]any {
	userErrors := make([]map[string]any, 0, len(messages))
	for _, m := range messages {
		userErrors = append(userErrors, map[string]any{
			"field":   []string{"automaticAppDiscount", "title"},
			"message": m,
		})
	}
	return map[string]any{
		"automaticAppDiscount": nil,
		"userErrors":           userErrors,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
