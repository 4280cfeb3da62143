/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package server hosts the browser build of the game as static files.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAddr   = ":5000"
	DefaultWebDir = "web"
	IndexFile     = "index.html"

	ShutdownTimeout = 5 * time.Second
)

var ErrNoIndex = errors.New("web directory has no " + IndexFile)

// NewRouter serves index.html at the root and every other path as a file
// under webDir.
func NewRouter(webDir string, log zerolog.Logger) (*mux.Router, error) {
	index := filepath.Join(webDir, IndexFile)
	if _, err := os.Stat(index); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoIndex, err)
	}

	r := mux.NewRouter()
	r.Use(logRequests(log))
	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, index)
	}).Methods(http.MethodGet, http.MethodHead)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(webDir))).Methods(http.MethodGet, http.MethodHead)
	return r, nil
}

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, handler http.Handler, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func logRequests(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Dur("elapsed", time.Since(start)).Msg("request")
		})
	}
}
