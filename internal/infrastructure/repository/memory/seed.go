package memory

import "github.com/FutDrafts/futdrafts.com-sub001/internal/domain/player"

// SeedPlayers returns the demo catalog served when no database is
// configured. Big enough for a four-participant draft at a handful of
// rounds without running dry.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-gk-01", Name: "Alisson Becker", Club: "Liverpool", Position: player.PositionGoalkeeper, PlayerRefID: 1001},
		{ID: "pl-gk-02", Name: "Ederson Moraes", Club: "Manchester City", Position: player.PositionGoalkeeper, PlayerRefID: 1002},
		{ID: "pl-gk-03", Name: "David Raya", Club: "Arsenal", Position: player.PositionGoalkeeper, PlayerRefID: 1003},
		{ID: "pl-gk-04", Name: "Andre Onana", Club: "Manchester United", Position: player.PositionGoalkeeper, PlayerRefID: 1004},
		{ID: "pl-def-01", Name: "Virgil van Dijk", Club: "Liverpool", Position: player.PositionDefender, PlayerRefID: 2001},
		{ID: "pl-def-02", Name: "William Saliba", Club: "Arsenal", Position: player.PositionDefender, PlayerRefID: 2002},
		{ID: "pl-def-03", Name: "Ruben Dias", Club: "Manchester City", Position: player.PositionDefender, PlayerRefID: 2003},
		{ID: "pl-def-04", Name: "Gabriel Magalhaes", Club: "Arsenal", Position: player.PositionDefender, PlayerRefID: 2004},
		{ID: "pl-def-05", Name: "Trent Alexander-Arnold", Club: "Liverpool", Position: player.PositionDefender, PlayerRefID: 2005},
		{ID: "pl-def-06", Name: "Josko Gvardiol", Club: "Manchester City", Position: player.PositionDefender, PlayerRefID: 2006},
		{ID: "pl-mid-01", Name: "Kevin De Bruyne", Club: "Manchester City", Position: player.PositionMidfielder, PlayerRefID: 3001},
		{ID: "pl-mid-02", Name: "Martin Odegaard", Club: "Arsenal", Position: player.PositionMidfielder, PlayerRefID: 3002},
		{ID: "pl-mid-03", Name: "Bruno Fernandes", Club: "Manchester United", Position: player.PositionMidfielder, PlayerRefID: 3003},
		{ID: "pl-mid-04", Name: "Declan Rice", Club: "Arsenal", Position: player.PositionMidfielder, PlayerRefID: 3004},
		{ID: "pl-mid-05", Name: "Cole Palmer", Club: "Chelsea", Position: player.PositionMidfielder, PlayerRefID: 3005},
		{ID: "pl-mid-06", Name: "Bukayo Saka", Club: "Arsenal", Position: player.PositionMidfielder, PlayerRefID: 3006},
		{ID: "pl-fwd-01", Name: "Erling Haaland", Club: "Manchester City", Position: player.PositionForward, PlayerRefID: 4001},
		{ID: "pl-fwd-02", Name: "Mohamed Salah", Club: "Liverpool", Position: player.PositionForward, PlayerRefID: 4002},
		{ID: "pl-fwd-03", Name: "Alexander Isak", Club: "Newcastle United", Position: player.PositionForward, PlayerRefID: 4003},
		{ID: "pl-fwd-04", Name: "Ollie Watkins", Club: "Aston Villa", Position: player.PositionForward, PlayerRefID: 4004},
		{ID: "pl-fwd-05", Name: "Son Heung-min", Club: "Tottenham Hotspur", Position: player.PositionForward, PlayerRefID: 4005},
		{ID: "pl-fwd-06", Name: "Darwin Nunez", Club: "Liverpool", Position: player.PositionForward, PlayerRefID: 4006},
	}
}
