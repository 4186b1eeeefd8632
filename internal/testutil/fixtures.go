package testutil

import (
	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
)

// SampleGame returns a valid game fixture with the provided id.
func SampleGame(id string) domaingames.Game {
	return domaingames.Game{
		ID:          id,
		Title:       "The Legend of Zelda",
		Genre:       "Action-Adventure",
		ReleaseDate: "1986",
	}
}
