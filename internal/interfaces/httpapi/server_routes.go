package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	// The player catalog is shared across all leagues and carries nothing
	// user-specific.
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("GET /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListMyLeagues)))
	mux.Handle("POST /v1/leagues/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinLeagueByInvite)))
	mux.Handle("GET /v1/leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.GetLeague)))
	mux.Handle("GET /v1/leagues/{leagueID}/participants", RequireAuth(verifier, http.HandlerFunc(handler.ListParticipants)))

	mux.Handle("POST /v1/leagues/{leagueID}/draft/start", RequireAuth(verifier, http.HandlerFunc(handler.StartDraft)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/picks", RequireAuth(verifier, http.HandlerFunc(handler.MakePick)))
	mux.Handle("GET /v1/leagues/{leagueID}/draft/board", RequireAuth(verifier, http.HandlerFunc(handler.GetDraftBoard)))
	mux.Handle("GET /v1/leagues/{leagueID}/draft/feed", RequireAuth(verifier, http.HandlerFunc(handler.DraftFeed)))
	mux.Handle("GET /v1/leagues/{leagueID}/players/available", RequireAuth(verifier, http.HandlerFunc(handler.ListAvailablePlayers)))

	mux.Handle("POST /v1/notifications/subscriptions", RequireAuth(verifier, http.HandlerFunc(handler.SubscribePush)))
	mux.Handle("DELETE /v1/notifications/subscriptions", RequireAuth(verifier, http.HandlerFunc(handler.UnsubscribePush)))

	mux.Handle("GET /v1/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))
}
