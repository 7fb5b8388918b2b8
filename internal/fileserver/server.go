package fileserver

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/joomcode/errorx"
)

// Server binds a TCP listener and serves a root directory until shut down.
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// New configures a server listening on addr and serving root.
func New(addr, root string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:           addr,
			Handler:        Handler(root),
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
	}
}

// Start binds the listener and begins serving in the background.
// It fails if the address is already bound.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return errorx.Decorate(err, "bind %s", s.srv.Addr)
	}
	s.ln = ln

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Println(err)
		}
	}()

	return nil
}

// Addr returns the bound listen address. Valid after Start.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return errorx.Decorate(err, "shutdown")
	}
	return nil
}
