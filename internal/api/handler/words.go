package handler

import (
	"net/http"

	"wordroom/internal/api/response"
	"wordroom/internal/services/words"
)

// WordsHandler exposes word list metadata
type WordsHandler struct {
	words words.ServiceInterface
}

// NewWordsHandler creates a new words handler
func NewWordsHandler(words words.ServiceInterface) *WordsHandler {
	return &WordsHandler{words: words}
}

// Info handles GET /api/words
func (h *WordsHandler) Info(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.WordsResponse{
		Loaded: h.words.IsLoaded(),
		Count:  h.words.Count(),
	})
}
