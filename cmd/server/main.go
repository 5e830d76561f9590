package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notedeck/internal/completion"
	"notedeck/internal/config"
	"notedeck/internal/handler"
	"notedeck/internal/middleware"
	"notedeck/internal/repository"
	"notedeck/internal/service"
	"notedeck/internal/web"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Store.URL == "" || cfg.Store.AnonKey == "" {
		log.Println("Warning: SUPABASE_URL or SUPABASE_ANON_KEY not set; note endpoints will fail")
	}

	noteRepo := repository.NewSupabaseNoteRepository(cfg.Store.URL, cfg.Store.AnonKey)
	noteService := service.NewNoteService(noteRepo)

	// A missing credential disables action generation only; the service then
	// answers every request with a configuration error.
	var completionClient completion.Client
	if cfg.Completion.APIKey != "" {
		completionClient = completion.NewOpenAIClient(cfg.Completion.APIKey, cfg.Completion.BaseURL, cfg.Completion.Model)
	} else {
		log.Println("OPENAI_API_KEY not set; action generation disabled")
	}
	actionService := service.NewActionService(completionClient, cfg.Completion.MaxTokens, cfg.Completion.Temperature)

	renderer, err := web.NewRenderer(cfg.Webhook.URL)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	noteHandler := handler.NewNoteHandler(noteService)
	actionHandler := handler.NewActionHandler(actionService)
	pageHandler := handler.NewPageHandler(noteService, renderer, cfg)

	r := mux.NewRouter()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	r.HandleFunc("/", pageHandler.Root).Methods("GET")
	r.HandleFunc("/styles.css", pageHandler.Styles).Methods("GET")
	r.HandleFunc("/calendar", pageHandler.CalendarPage).Methods("GET")
	r.HandleFunc("/health", pageHandler.Health).Methods("GET")

	r.HandleFunc("/api/notes", pageHandler.NotesPage).Methods("GET")
	r.HandleFunc("/api/notes", noteHandler.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/notes/json", noteHandler.ListJSON).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/notes/test", noteHandler.StoreTest).Methods("GET")
	r.HandleFunc("/api/notes/{id}", noteHandler.Update).Methods("PUT", "OPTIONS")
	r.HandleFunc("/api/notes/{id}", noteHandler.Delete).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/api/generate-actions", actionHandler.Generate).Methods("POST", "OPTIONS")

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting Notedeck server on %s (env: %s)", addr, cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
