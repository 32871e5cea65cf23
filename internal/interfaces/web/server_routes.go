package web

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPageRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Home)
	mux.HandleFunc("GET /teams", handler.Teams)
	mux.HandleFunc("GET /teams/{id}", handler.TeamDetail)
	mux.HandleFunc("GET /players", handler.Players)
	mux.HandleFunc("GET /players/{id}", handler.PlayerProfile)
	mux.HandleFunc("GET /players/{id}/gamelog", handler.PlayerGameLog)
	mux.HandleFunc("GET /players/{id}/splits", handler.PlayerSplits)
	mux.HandleFunc("GET /games", handler.Games)
	mux.HandleFunc("GET /games/{game_id}", handler.BoxScore)
	mux.HandleFunc("GET /boxscores/{game_id}", handler.BoxScore)
	mux.HandleFunc("GET /leagues", handler.Seasons)
	mux.HandleFunc("GET /leagues/{season_id}", handler.SeasonDetail)
	mux.HandleFunc("GET /draft", handler.Draft)
	mux.HandleFunc("GET /contracts", handler.Contracts)
	mux.HandleFunc("GET /franchises", handler.Franchises)
	mux.HandleFunc("GET /", handler.NotFound)
}
