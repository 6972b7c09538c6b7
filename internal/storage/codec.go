package storage

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/riordanpawley/taskboard/internal/domain"
)

// document mirrors domain.BoardsData with a pointer so a missing "boards"
// key can be told apart from an empty list
type document struct {
	Boards *[]domain.Board `json:"boards"`
}

// Encode serializes the boards document
func Encode(data domain.BoardsData) ([]byte, error) {
	normalized := domain.BoardsData{Boards: domain.CloneBoards(data.Boards)}
	out, err := sonic.ConfigStd.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode boards: %w", err)
	}
	return out, nil
}

// Decode parses a boards document. Anything that is not a JSON object with a
// "boards" array of the expected shape is reported as domain.ErrMalformed.
func Decode(raw []byte) (*domain.BoardsData, error) {
	var doc document
	if err := sonic.ConfigStd.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}
	if doc.Boards == nil {
		return nil, fmt.Errorf("%w: missing boards", domain.ErrMalformed)
	}
	return &domain.BoardsData{Boards: domain.CloneBoards(*doc.Boards)}, nil
}
