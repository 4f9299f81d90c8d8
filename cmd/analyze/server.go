package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// application serves game analysis over plain HTTP and over a websocket
// that streams one result per analysed move.
type application struct {
	router       *mux.Router
	upgrader     websocket.Upgrader
	defaultDepth int
}

func stdoutLogger(next http.Handler) http.Handler {
	return handlers.LoggingHandler(os.Stdout, next)
}

func newApplication(defaultDepth int) *application {
	var app = &application{
		router:       mux.NewRouter(),
		defaultDepth: defaultDepth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	app.router.Use(stdoutLogger)
	app.router.HandleFunc("/analyze", app.analyzeHandler).Methods("POST")
	app.router.HandleFunc("/ws", app.wsHandler)
	return app
}

func (app *application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.router.ServeHTTP(w, r)
}

type analyzeRequest struct {
	PGN   string `json:"pgn"`
	Depth int    `json:"depth"`
}

func (app *application) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var request analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.Depth <= 0 {
		request.Depth = app.defaultDepth
	}

	var results, err = analyzeGame(request.PGN, request.Depth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

func (app *application) wsHandler(w http.ResponseWriter, r *http.Request) {
	var conn, err = app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	go func() {
		defer conn.Close()
		for {
			var request analyzeRequest
			if err := conn.ReadJSON(&request); err != nil {
				return
			}
			if request.Depth <= 0 {
				request.Depth = app.defaultDepth
			}

			var results = analyzeGameStreaming(request.PGN, request.Depth)
			for result := range results {
				if err := conn.WriteJSON(result); err != nil {
					return
				}
			}
		}
	}()
}
