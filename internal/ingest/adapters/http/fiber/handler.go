package fiber

import (
	"context"
	"errors"
	"net/http"

	"newsdesk-service/internal/ingest/core/domain"
	"newsdesk-service/internal/ingest/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type LoadDatasetUseCase interface {
	LoadSegments(ctx context.Context, records []domain.SegmentRecord) (domain.LoadResult, error)
	LoadAudience(ctx context.Context, raw map[string][]int64) (domain.LoadResult, error)
}

// LoadObserver is told how many rows each load inserted, by table.
type LoadObserver interface {
	ObserveLoad(table string, rows int64)
}

type LoadHandler struct {
	loadUC   LoadDatasetUseCase
	observer LoadObserver
}

func NewLoadHandler(loadUC LoadDatasetUseCase, observer LoadObserver) *LoadHandler {
	return &LoadHandler{loadUC: loadUC, observer: observer}
}

// BulkLoadSegments godoc
// @Summary Replace all segments
// @Description Deletes every segment and topic, then stores the given ones in one transaction
// @Tags Load
// @Accept json
// @Produce json
// @Param request body []SegmentRecordRequest true "Segments"
// @Success 201 {object} LoadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /segment/bulk [post]
func (h *LoadHandler) BulkLoadSegments(c *fiber.Ctx) error {
	var req []SegmentRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	if len(req) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "records_required"})
	}

	records := make([]domain.SegmentRecord, len(req))
	for i, s := range req {
		topics := make([]domain.TopicRecord, len(s.Topics))
		for j, t := range s.Topics {
			topics[j] = domain.TopicRecord{Name: t.Name, Count: t.Count, Score: t.Score}
		}
		records[i] = domain.SegmentRecord{
			Channel: s.Channel,
			StartTS: s.StartTS,
			EndTS:   s.EndTS,
			Topics:  topics,
		}
	}

	res, err := h.loadUC.LoadSegments(c.UserContext(), records)
	if err != nil {
		return writeError(c, err)
	}

	h.observe("segment", res.Inserted)
	h.observe("topic", res.TopicsInserted)
	return c.Status(http.StatusCreated).JSON(toLoadResponse(res))
}

// BulkLoadAudience godoc
// @Summary Replace all audience readings
// @Description Body maps an epoch second to per-channel values, in configured channel order
// @Tags Load
// @Accept json
// @Produce json
// @Param request body map[string][]int64 true "Audience readings"
// @Success 201 {object} LoadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /audience/bulk [post]
func (h *LoadHandler) BulkLoadAudience(c *fiber.Ctx) error {
	var req map[string][]int64
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	if len(req) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "records_required"})
	}

	res, err := h.loadUC.LoadAudience(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}

	h.observe("audience", res.Inserted)
	return c.Status(http.StatusCreated).JSON(toLoadResponse(res))
}

func (h *LoadHandler) observe(table string, rows int64) {
	if h.observer != nil {
		h.observer.ObserveLoad(table, rows)
	}
}

func toLoadResponse(res domain.LoadResult) LoadResponse {
	return LoadResponse{
		LoadID:         res.LoadID,
		Family:         res.Family,
		Deleted:        res.Deleted,
		Inserted:       res.Inserted,
		TopicsInserted: res.TopicsInserted,
	}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecord):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_record",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrDuplicateReading):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "duplicate_reading",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
