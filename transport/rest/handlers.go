package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/snake-backend/internal/apperror"
	"github.com/rocketscienceinc/snake-backend/internal/usecase"
)

const (
	msgMissingFields   = "Missing name or score"
	msgEmptyName       = "Name cannot be empty"
	msgInvalidScore    = "Invalid score format"
	msgUnsupportedType = "Content-Type must be application/json"
	msgInternal        = "Internal server error"
)

type submitRequest struct {
	Name  *string `json:"name"`
	Score any     `json:"score"`
}

func ListHighscores(logger *slog.Logger, highscores usecase.HighscoreUseCase) gin.HandlerFunc {
	log := logger.With("method", "ListHighscores")

	return func(c *gin.Context) {
		list, err := highscores.List(c.Request.Context())
		if err != nil {
			log.Error("failed to list highscores", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

func SubmitHighscore(logger *slog.Logger, highscores usecase.HighscoreUseCase) gin.HandlerFunc {
	log := logger.With("method", "SubmitHighscore")

	return func(c *gin.Context) {
		if c.ContentType() != gin.MIMEJSON {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": msgUnsupportedType})
			return
		}

		var request submitRequest
		if err := c.ShouldBindJSON(&request); err != nil || request.Name == nil || request.Score == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFields})
			return
		}

		name := strings.TrimSpace(*request.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgEmptyName})
			return
		}

		score, err := usecase.ParseScore(request.Score)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidScore})
			return
		}

		if err = highscores.Submit(c.Request.Context(), name, score); err != nil {
			if errors.Is(err, apperror.ErrEmptyName) {
				c.JSON(http.StatusBadRequest, gin.H{"error": msgEmptyName})
				return
			}

			log.Error("failed to submit highscore", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": "success"})
	}
}
