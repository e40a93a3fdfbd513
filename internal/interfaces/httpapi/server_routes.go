package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/squad", handler.GetTeamSquadByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures", handler.ListFixturesByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures/{fixtureID}", handler.GetFixtureDetailsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures/{fixtureID}/events", handler.ListFixtureEventsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures/{fixtureID}/prediction", handler.PredictFixtureByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListLeagueStandings)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/leagues/{leagueID}/schedule", RequireAdminToken(adminToken, http.HandlerFunc(handler.GenerateSchedule)))
	mux.Handle("POST /v1/leagues/{leagueID}/fixtures/{fixtureID}/simulate", RequireAdminToken(adminToken, http.HandlerFunc(handler.SimulateFixture)))
	mux.Handle("POST /v1/leagues/{leagueID}/gameweeks/{gameweek}/simulate", RequireAdminToken(adminToken, http.HandlerFunc(handler.SimulateGameweek)))
}
