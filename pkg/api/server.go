// Package api exposes the document pipeline over HTTP: PDF export, the
// HTML print view, email sends and WhatsApp share links.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/document-export-service/pkg/assets"
	"github.com/document-export-service/pkg/backend"
	"github.com/document-export-service/pkg/dispatch"
	"github.com/document-export-service/pkg/export"
)

// Server routes document requests.
type Server struct {
	log      *zap.Logger
	backend  *backend.Client
	resolver *assets.Resolver
	pipeline *export.Pipeline
	emailer  *dispatch.Emailer
	phone    string

	router *mux.Router
}

// Config wires a Server.
type Config struct {
	Backend       *backend.Client
	Resolver      *assets.Resolver
	Pipeline      *export.Pipeline
	Emailer       *dispatch.Emailer
	WhatsAppPhone string
}

// NewServer builds the router.
func NewServer(log *zap.Logger, cfg Config) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		log:      log,
		backend:  cfg.Backend,
		resolver: cfg.Resolver,
		pipeline: cfg.Pipeline,
		emailer:  cfg.Emailer,
		phone:    cfg.WhatsAppPhone,
		router:   mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.requestLog)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/api/documents/contract/{id}/pdf", s.handleContractPDF).Methods(http.MethodGet)
	r.HandleFunc("/api/documents/contract/{id}/print", s.handleContractPrint).Methods(http.MethodGet)
	r.HandleFunc("/api/documents/contract/{id}/email", s.handleContractEmail).Methods(http.MethodPost)
	r.HandleFunc("/api/documents/contract/{id}/whatsapp", s.handleContractWhatsApp).Methods(http.MethodGet)

	r.HandleFunc("/api/documents/purchase-order/{id}/pdf", s.handlePurchaseOrderPDF).Methods(http.MethodGet)
	r.HandleFunc("/api/documents/purchase-order/{id}/print", s.handlePurchaseOrderPrint).Methods(http.MethodGet)
	r.HandleFunc("/api/documents/purchase-order/{id}/email", s.handlePurchaseOrderEmail).Methods(http.MethodPost)

	r.HandleFunc("/api/dispatch/{id}/whatsapp", s.handleDispatchWhatsApp).Methods(http.MethodGet)
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server with sane timeouts.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.log.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
