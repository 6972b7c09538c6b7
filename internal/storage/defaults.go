package storage

import (
	_ "embed"

	"github.com/riordanpawley/taskboard/internal/domain"
)

//go:embed data.json
var defaultDocument []byte

// DefaultData returns the bundled dataset used when nothing was persisted
func DefaultData() domain.BoardsData {
	data, err := Decode(defaultDocument)
	if err != nil {
		return domain.BoardsData{Boards: []domain.Board{}}
	}
	return *data
}
