package memory

import "github.com/riskibarqy/fantasy-draft/internal/domain/player"

const SeedSeason = "2025/2026"

// SeedUsers returns the demo competitors in draft order.
func SeedUsers() []string {
	return []string{"user-andi", "user-budi", "user-citra", "user-dewi"}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "idn-gk-01", TeamName: "Persija Jakarta", Name: "Andritany Ardhiyasa", Position: player.PositionGoalkeeper, Price: 90, Available: true},
		{ID: "idn-gk-02", TeamName: "Persib Bandung", Name: "Teja Paku Alam", Position: player.PositionGoalkeeper, Price: 85, Available: true},
		{ID: "idn-gk-03", TeamName: "Bali United", Name: "Adilson Maringa", Position: player.PositionGoalkeeper, Price: 82, Available: true},
		{ID: "idn-gk-04", TeamName: "Persebaya Surabaya", Name: "Ernando Ari", Position: player.PositionGoalkeeper, Price: 84, Available: true},
		{ID: "idn-def-01", TeamName: "Persija Jakarta", Name: "Hansamu Yama", Position: player.PositionDefender, Price: 88, Available: true},
		{ID: "idn-def-02", TeamName: "Persib Bandung", Name: "Nick Kuipers", Position: player.PositionDefender, Price: 92, Available: true},
		{ID: "idn-def-03", TeamName: "Persebaya Surabaya", Name: "Dusan Stevanovic", Position: player.PositionDefender, Price: 84, Available: true},
		{ID: "idn-def-04", TeamName: "Bali United", Name: "Ricky Fajrin", Position: player.PositionDefender, Price: 80, Available: true},
		{ID: "idn-def-05", TeamName: "Persebaya Surabaya", Name: "Arief Catur", Position: player.PositionDefender, Price: 72, Available: true},
		{ID: "idn-mid-01", TeamName: "Persija Jakarta", Name: "Maciej Gajos", Position: player.PositionMidfielder, Price: 98, Available: true},
		{ID: "idn-mid-02", TeamName: "Persib Bandung", Name: "Marc Klok", Position: player.PositionMidfielder, Price: 99, Available: true},
		{ID: "idn-mid-03", TeamName: "Persebaya Surabaya", Name: "Bruno Moreira", Position: player.PositionMidfielder, Price: 95, Available: true},
		{ID: "idn-mid-04", TeamName: "Bali United", Name: "Eber Bessa", Position: player.PositionMidfielder, Price: 97, Available: true},
		{ID: "idn-mid-05", TeamName: "Bali United", Name: "Mitsuru Maruoka", Position: player.PositionMidfielder, Price: 90, Available: true},
		{ID: "idn-mid-06", TeamName: "Persib Bandung", Name: "Dedi Kusnandar", Position: player.PositionMidfielder, Price: 78, Available: true},
		{ID: "idn-fwd-01", TeamName: "Persija Jakarta", Name: "Gustavo Almeida", Position: player.PositionForward, Price: 105, Available: true},
		{ID: "idn-fwd-02", TeamName: "Persib Bandung", Name: "David da Silva", Position: player.PositionForward, Price: 108, Available: true},
		{ID: "idn-fwd-03", TeamName: "Persebaya Surabaya", Name: "Paulo Henrique", Position: player.PositionForward, Price: 100, Available: true},
		{ID: "idn-fwd-04", TeamName: "Bali United", Name: "Spasojevic Ilija", Position: player.PositionForward, Price: 96, Available: true},
		{ID: "idn-fwd-05", TeamName: "Persija Jakarta", Name: "Marko Simic", Position: player.PositionForward, Price: 94, Available: false},
	}
}
