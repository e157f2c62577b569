package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"terrafarm/internal/app/action"
	"terrafarm/internal/app/crops"
	"terrafarm/internal/app/dayadvance"
	"terrafarm/internal/app/game"
	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	CreateUC     game.CreateUseCase
	GetUC        game.GetUseCase
	DeleteUC     game.DeleteUseCase
	SummaryUC    game.SummaryUseCase
	EventsUC     game.EventsUseCase
	ActionUC     action.UseCase
	DayAdvanceUC dayadvance.UseCase
	CropsUC      crops.UseCase
	KPI          kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	g := s.Group("/api/game")
	g.POST("/new", h.createGame)
	g.GET("/:id", h.getGame)
	g.DELETE("/:id", h.deleteGame)
	g.POST("/:id/action", h.performAction)
	g.POST("/:id/advance-day", h.advanceDay)
	g.GET("/:id/summary", h.summary)
	g.GET("/:id/events", h.events)

	c := s.Group("/api/crops")
	c.GET("/", h.listCrops)
	c.GET("/recommend", h.recommendCrops)
	c.GET("/:id", h.getCrop)
	c.GET("/:id/suitability", h.cropSuitability)

	s.GET("/ops/kpi", h.kpi)
}

type createGameRequest struct {
	PlayerName string  `json:"player_name"`
	Difficulty string  `json:"difficulty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	NumPlots   int     `json:"num_plots"`
}

type actionRequest struct {
	Action string `json:"action"`
	PlotID int    `json:"plot_id"`
	CropID string `json:"crop_id,omitempty"`
}

func (h Handler) createGame(c context.Context, ctx *app.RequestContext) {
	var body createGameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CreateUC.Execute(c, game.CreateRequest{
		OwnerID:    body.PlayerName,
		Difficulty: farm.Difficulty(body.Difficulty),
		Latitude:   body.Latitude,
		Longitude:  body.Longitude,
		PlotCount:  body.NumPlots,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) getGame(c context.Context, ctx *app.RequestContext) {
	resp, err := h.GetUC.Execute(c, game.GetRequest{FarmID: pathID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteGame(c context.Context, ctx *app.RequestContext) {
	if err := h.DeleteUC.Execute(c, game.DeleteRequest{FarmID: pathID(ctx)}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"message": "game deleted"})
}

func (h Handler) performAction(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{
		FarmID: pathID(ctx),
		Intent: farm.ActionIntent{
			Type:   farm.ActionType(body.Action),
			PlotID: body.PlotID,
			CropID: body.CropID,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) advanceDay(c context.Context, ctx *app.RequestContext) {
	resp, err := h.DayAdvanceUC.Execute(c, dayadvance.Request{FarmID: pathID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) summary(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SummaryUC.Execute(c, game.SummaryRequest{FarmID: pathID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.EventsUC.Execute(c, game.EventsRequest{FarmID: pathID(ctx), Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listCrops(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.CropsUC.List(c))
}

func (h Handler) getCrop(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CropsUC.Get(c, crops.GetRequest{CropID: pathID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cropSuitability(c context.Context, ctx *app.RequestContext) {
	temp, errT := strconv.ParseFloat(string(ctx.Query("temperature")), 64)
	precip, errP := strconv.ParseFloat(string(ctx.Query("precipitation")), 64)
	if errT != nil || errP != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "temperature and precipitation query params are required")
		return
	}
	resp, err := h.CropsUC.Suitability(c, crops.SuitabilityRequest{
		CropID:        pathID(ctx),
		Temperature:   temp,
		Precipitation: precip,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) recommendCrops(c context.Context, ctx *app.RequestContext) {
	temp, errT := strconv.ParseFloat(string(ctx.Query("temperature")), 64)
	precip, errP := strconv.ParseFloat(string(ctx.Query("precipitation")), 64)
	if errT != nil || errP != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "temperature and precipitation query params are required")
		return
	}
	ctx.JSON(consts.StatusOK, h.CropsUC.Recommend(c, crops.RecommendRequest{
		Temperature:   temp,
		Precipitation: precip,
	}))
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func pathID(ctx *app.RequestContext) string {
	return strings.TrimSpace(ctx.Param("id"))
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, farm.ErrInvalidLocation):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_location", err.Error())
	case errors.Is(err, farm.ErrUnknownCrop):
		writeUnknownCrop(ctx, err)
	case errors.Is(err, farm.ErrInvalidState):
		writeErrorBody(ctx, consts.StatusConflict, "invalid_state", err.Error())
	case errors.Is(err, farm.ErrNotReady):
		writeErrorBody(ctx, consts.StatusConflict, "not_ready", err.Error())
	case errors.Is(err, farm.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_funds", err.Error())
	case errors.Is(err, farm.ErrPlotNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "plot_not_found", err.Error())
	case errors.Is(err, farm.ErrUnknownAction),
		errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, dayadvance.ErrInvalidRequest),
		errors.Is(err, game.ErrInvalidRequest),
		errors.Is(err, crops.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeUnknownCrop(ctx *app.RequestContext, err error) {
	var unknownErr *action.UnknownCropError
	if errors.As(err, &unknownErr) && unknownErr.Suggestion != "" {
		ctx.JSON(consts.StatusBadRequest, map[string]any{
			"error": map[string]any{
				"code":    "unknown_crop",
				"message": err.Error(),
				"details": map[string]string{"suggestion": unknownErr.Suggestion},
			},
		})
		return
	}
	writeErrorBody(ctx, consts.StatusBadRequest, "unknown_crop", err.Error())
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
