// internal/handler/grammar.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	narser "github.com/Nacorpio/Narser"
	"github.com/Nacorpio/Narser/grammar/model"
	"github.com/Nacorpio/Narser/grammar/parser"
	"github.com/Nacorpio/Narser/internal/config"
	"github.com/Nacorpio/Narser/internal/domain"
	"github.com/Nacorpio/Narser/internal/serializer"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type GrammarHandler struct {
	maxSourceBytes int64
	whitelist      string
	validate       *validator.Validate
}

func NewGrammarHandler(cfg *config.Config) *GrammarHandler {
	return &GrammarHandler{
		maxSourceBytes: cfg.Parser.MaxSourceBytes,
		whitelist:      cfg.Parser.IdentifierWhitelist,
		validate:       validator.New(),
	}
}

type SourceRequest struct {
	Source string `json:"source" validate:"required"`
}

type RuleRequest struct {
	Source string `json:"source" validate:"required"`
	Def    string `json:"def" validate:"required"`
	Rule   string `json:"rule" validate:"required"`
}

type ParseResponse struct {
	BaseResponse
	BuildID     string                      `json:"build_id"`
	Program     *serializer.ProgramView     `json:"program,omitempty"`
	Diagnostics []serializer.DiagnosticView `json:"diagnostics"`
	Error       string                      `json:"error,omitempty"`
}

type TokensResponse struct {
	BaseResponse
	BuildID     string                      `json:"build_id"`
	Tokens      []serializer.TokenView      `json:"tokens"`
	Diagnostics []serializer.DiagnosticView `json:"diagnostics"`
	Error       string                      `json:"error,omitempty"`
}

type RuleResponse struct {
	BaseResponse
	BuildID string               `json:"build_id"`
	Rule    *serializer.RuleView `json:"rule"`
	Text    string               `json:"text"`
}

// ParseHandler runs the whole front end and returns the definitions
func (h *GrammarHandler) ParseHandler(w http.ResponseWriter, r *http.Request) {
	var req SourceRequest
	if !h.decode(w, r, &req) {
		return
	}

	buildID := uuid.NewString()
	res, err := h.run(r, req.Source)
	if err != nil {
		slog.WarnContext(r.Context(), "grammar rejected", "error", err, "buildID", buildID, "requestID", chmw.GetReqID(r.Context()))
		respondWithJSON(w, http.StatusUnprocessableEntity, ParseResponse{
			BuildID:     buildID,
			Diagnostics: diagnostics(res),
			Error:       err.Error(),
		})
		return
	}

	view := serializer.NewProgramView(res.Program)
	slog.InfoContext(r.Context(), "grammar parsed", "defs", len(view.Defs), "buildID", buildID, "requestID", chmw.GetReqID(r.Context()))
	respondWithJSON(w, http.StatusOK, ParseResponse{
		BaseResponse: BaseResponse{Ok: true},
		BuildID:      buildID,
		Program:      &view,
		Diagnostics:  diagnostics(res),
	})
}

// TokensHandler returns the token stream. Tokens read before an
// unterminated literal are returned alongside the error.
func (h *GrammarHandler) TokensHandler(w http.ResponseWriter, r *http.Request) {
	var req SourceRequest
	if !h.decode(w, r, &req) {
		return
	}

	sink := &parser.Collector{}
	tokens, err := parser.NewLexer(req.Source,
		parser.WithLexerSink(sink),
		parser.WithIdentifierWhitelist(h.whitelist),
	).Tokenize()

	resp := TokensResponse{
		BaseResponse: BaseResponse{Ok: err == nil},
		BuildID:      uuid.NewString(),
		Tokens:       serializer.NewTokenViews(tokens),
		Diagnostics:  serializer.NewDiagnosticViews(sink.Diagnostics()),
	}
	code := http.StatusOK
	if err != nil {
		resp.Error = err.Error()
		code = http.StatusUnprocessableEntity
	}
	respondWithJSON(w, code, resp)
}

// RuleHandler parses the source and returns one rule of one definition
func (h *GrammarHandler) RuleHandler(w http.ResponseWriter, r *http.Request) {
	var req RuleRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.run(r, req.Source)
	if err != nil {
		respondWithErrorCode(w, http.StatusUnprocessableEntity, "parse_failed", err.Error())
		return
	}

	rule, err := findRule(res, req.Def, req.Rule)
	if err != nil {
		respondWithErrorCode(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	view := serializer.NewRuleView(res.Program, rule)
	respondWithJSON(w, http.StatusOK, RuleResponse{
		BaseResponse: BaseResponse{Ok: true},
		BuildID:      uuid.NewString(),
		Rule:         &view,
		Text:         rule.Declaration.String(),
	})
}

func (h *GrammarHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var details []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details = append(details, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
			}
		}
		respondWithErrorCode(w, http.StatusBadRequest, "invalid_input", domain.ErrInvalidInput.Error(), details...)
		return false
	}

	if n := sourceLen(dst); int64(n) > h.maxSourceBytes {
		respondWithErrorCode(w, http.StatusRequestEntityTooLarge, "source_too_large",
			fmt.Sprintf("%s: %d > %d bytes", domain.ErrSourceTooLarge, n, h.maxSourceBytes))
		return false
	}

	return true
}

func (h *GrammarHandler) run(r *http.Request, source string) (*parser.Result, error) {
	cfg := narser.NewConfig(r.Context())
	cfg.SetIdentifierWhitelist(h.whitelist)
	return cfg.Parse(source)
}

func findRule(res *parser.Result, def, rule string) (*model.RuleDefNode, error) {
	d, ok := res.Program.Lookup(def)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, def)
	}
	found, ok := d.Rule(rule)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", domain.ErrRuleNotFound, rule, def)
	}
	return found, nil
}

func sourceLen(req interface{}) int {
	switch req := req.(type) {
	case *SourceRequest:
		return len(req.Source)
	case *RuleRequest:
		return len(req.Source)
	}
	return 0
}

func diagnostics(res *parser.Result) []serializer.DiagnosticView {
	if res == nil {
		return []serializer.DiagnosticView{}
	}
	return serializer.NewDiagnosticViews(res.Diagnostics)
}
