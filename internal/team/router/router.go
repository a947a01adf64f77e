// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	playerRepository "github.com/footballdb/football-db/internal/player/repository"
	"github.com/footballdb/football-db/internal/team/handler"
	teamRepository "github.com/footballdb/football-db/internal/team/repository"
	"github.com/footballdb/football-db/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	teams := teamRepository.New(db)
	players := playerRepository.New(db)
	svc := service.New(teams, players, logger)
	h := handler.New(svc, logger)

	group := r.Group("/api/v1/teams")
	group.GET("", h.ListTeams)
	group.GET("/:id", h.GetTeam)
	group.POST("", h.CreateTeam)
	group.PUT("/:id", h.UpdateTeam)
	group.DELETE("/:id", h.DeleteTeam)
}
