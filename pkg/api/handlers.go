package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/document-export-service/pkg/backend"
	"github.com/document-export-service/pkg/dispatch"
	"github.com/document-export-service/pkg/export"
	"github.com/document-export-service/pkg/layout"
)

func session(r *http.Request) backend.Session {
	tok := r.Header.Get("Authorization")
	tok = strings.TrimPrefix(tok, "Bearer ")
	return backend.Session{Token: tok}
}

// variantFrom reads the structural toggles. Both default to on; ?letterhead=0
// renders for pre-printed paper, ?signature=0 omits the signature block.
func variantFrom(r *http.Request) layout.Variant {
	off := func(key string) bool {
		v := strings.ToLower(r.URL.Query().Get(key))
		return v == "0" || v == "false" || v == "no"
	}
	return layout.Variant{
		Letterhead: !off("letterhead"),
		Signature:  !off("signature"),
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		s.respondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, backend.ErrLetterheadMissing):
		s.respondError(w, http.StatusUnprocessableEntity, "branch letterhead missing")
	case errors.Is(err, export.ErrAssetsNotReady):
		s.respondError(w, http.StatusServiceUnavailable, "document assets not resolved")
	case errors.As(err, &apiErr):
		s.log.Warn("backend error", zap.Error(err))
		s.respondError(w, http.StatusBadGateway, apiErr.Msg)
	default:
		s.log.Error("request failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeArtifact(w http.ResponseWriter, art *export.Artifact) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+art.Filename+`"`)
	w.Header().Set("X-Artifact-ID", art.ID)
	w.Write(art.Bytes)
}

func (s *Server) contractDocument(r *http.Request) (*layout.Document, error) {
	v, err := s.backend.FetchContract(r.Context(), session(r), mux.Vars(r)["id"])
	if err != nil {
		return nil, err
	}
	return layout.BuildContract(r.Context(), v, s.resolver, variantFrom(r)), nil
}

func (s *Server) purchaseOrderDocument(r *http.Request) (*layout.Document, error) {
	v, err := s.backend.FetchPurchaseOrder(r.Context(), session(r), mux.Vars(r)["id"])
	if err != nil {
		return nil, err
	}
	return layout.BuildPurchaseOrder(r.Context(), v, s.resolver, variantFrom(r)), nil
}

func (s *Server) handleContractPDF(w http.ResponseWriter, r *http.Request) {
	doc, err := s.contractDocument(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	art, err := s.pipeline.Generate(r.Context(), doc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeArtifact(w, art)
}

func (s *Server) handlePurchaseOrderPDF(w http.ResponseWriter, r *http.Request) {
	doc, err := s.purchaseOrderDocument(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	art, err := s.pipeline.Generate(r.Context(), doc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeArtifact(w, art)
}

func (s *Server) handleContractPrint(w http.ResponseWriter, r *http.Request) {
	doc, err := s.contractDocument(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.RenderHTML(w, doc); err != nil {
		s.log.Error("render print view", zap.Error(err))
	}
}

func (s *Server) handlePurchaseOrderPrint(w http.ResponseWriter, r *http.Request) {
	doc, err := s.purchaseOrderDocument(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.RenderHTML(w, doc); err != nil {
		s.log.Error("render print view", zap.Error(err))
	}
}

type emailBody struct {
	To          string `json:"to"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

func (s *Server) handleContractEmail(w http.ResponseWriter, r *http.Request) {
	s.handleEmail(w, r, s.contractDocument)
}

func (s *Server) handlePurchaseOrderEmail(w http.ResponseWriter, r *http.Request) {
	s.handleEmail(w, r, s.purchaseOrderDocument)
}

func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request, build func(*http.Request) (*layout.Document, error)) {
	var body emailBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.To == "" {
		s.respondError(w, http.StatusBadRequest, "recipient is required")
		return
	}

	doc, err := build(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	art, err := s.pipeline.Generate(r.Context(), doc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	msg := dispatch.Message{To: body.To, Subject: body.Subject, Description: body.Description}
	if err := s.emailer.Send(r.Context(), session(r), msg, art); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func (s *Server) handleContractWhatsApp(w http.ResponseWriter, r *http.Request) {
	v, err := s.backend.FetchContract(r.Context(), session(r), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	msg := dispatch.BuildDocumentMessage(v.Contract.Ref, v.Contract.Date, v.Contract.Buyer)
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message":   msg,
		"deep_link": dispatch.DeepLinkURL(msg),
		"web_url":   dispatch.WebURL(msg),
	})
}

func (s *Server) handleDispatchWhatsApp(w http.ResponseWriter, r *http.Request) {
	v, err := s.backend.FetchDispatch(r.Context(), session(r), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	msg := dispatch.BuildDispatchMessage(v)
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": msg,
		"url":     dispatch.WaMeURL(s.phone, msg),
	})
}
