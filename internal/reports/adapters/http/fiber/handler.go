package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"newsdesk-service/internal/reports/core/domain"
	"newsdesk-service/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ReportUseCase interface {
	ByDate(ctx context.Context, date string) (domain.DateReport, error)
	Timeline(ctx context.Context, topic string) ([]domain.ChannelSeries, error)
	BestSegments(ctx context.Context, topic string) ([]domain.ChannelSegments, error)
}

type CatalogUseCase interface {
	Channels(ctx context.Context) ([]domain.Channel, error)
	Topics(ctx context.Context) ([]domain.Topic, error)
	Topic(ctx context.Context, id int64) (*domain.Topic, error)
	Segments(ctx context.Context) ([]domain.Segment, error)
	Segment(ctx context.Context, id int64) (*domain.Segment, error)
	Audience(ctx context.Context) ([]domain.Reading, error)
}

type ReportHandler struct {
	reports ReportUseCase
	catalog CatalogUseCase
}

func NewReportHandler(reports ReportUseCase, catalog CatalogUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, catalog: catalog}
}

// ByDate godoc
// @Summary Topic performance for a day
// @Description Mean audience per channel for every topic whose segment starts or ends on the given day
// @Tags Reports
// @Produce json
// @Param date query string true "Day, YYYY-MM-DD"
// @Success 200 {object} DateReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /audience/by-date/ [get]
func (h *ReportHandler) ByDate(c *fiber.Ctx) error {
	report, err := h.reports.ByDate(c.UserContext(), c.Query("date", ""))
	if err != nil {
		return writeError(c, err)
	}

	resp := make(DateReportResponse, len(report))
	for topic, byChannel := range report {
		resp[topic] = byChannel
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// Timeline godoc
// @Summary Audience time series for a topic
// @Description Raw audience readings inside the topic's segments, grouped by channel
// @Tags Reports
// @Produce json
// @Param topic query string true "Topic name (case-insensitive)"
// @Success 200 {array} TimelineEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /topic/timeline/ [get]
func (h *ReportHandler) Timeline(c *fiber.Ctx) error {
	topic, err := topicParam(c)
	if err != nil {
		return writeError(c, err)
	}

	series, err := h.reports.Timeline(c.UserContext(), topic)
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]TimelineEntryResponse, 0, len(series))
	for _, s := range series {
		entry := TimelineEntryResponse{
			Channel:  s.Channel,
			Audience: make([]AudiencePointResponse, 0, len(s.Audience)),
		}
		for _, p := range s.Audience {
			entry.Audience = append(entry.Audience, AudiencePointResponse{Timestamp: p.Timestamp, Value: p.Value})
		}
		resp = append(resp, entry)
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// BestSegments godoc
// @Summary Best segments for a topic
// @Description Segments of the topic ranked by mean audience, per channel. Empty list when the topic is unknown.
// @Tags Reports
// @Produce json
// @Param topic query string true "Topic name (case-insensitive)"
// @Success 200 {object} BestSegmentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /topic/segments/ [get]
func (h *ReportHandler) BestSegments(c *fiber.Ctx) error {
	topic, err := topicParam(c)
	if err != nil {
		return writeError(c, err)
	}

	ranking, err := h.reports.BestSegments(c.UserContext(), topic)
	if err != nil {
		return writeError(c, err)
	}

	if len(ranking) == 0 {
		return c.Status(http.StatusOK).JSON([]SegmentPerformanceResponse{})
	}

	resp := make(BestSegmentsResponse, len(ranking))
	for _, group := range ranking {
		list := make([]SegmentPerformanceResponse, 0, len(group.Segments))
		for _, s := range group.Segments {
			list = append(list, SegmentPerformanceResponse{
				ID:       s.ID,
				StartTS:  s.StartTS,
				EndTS:    s.EndTS,
				Audience: s.Audience,
			})
		}
		resp[group.Channel] = list
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// ListChannels godoc
// @Summary List channels
// @Tags Catalog
// @Produce json
// @Success 200 {array} ChannelResponse
// @Failure 500 {object} ErrorResponse
// @Router /channel/ [get]
func (h *ReportHandler) ListChannels(c *fiber.Ctx) error {
	channels, err := h.catalog.Channels(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]ChannelResponse, 0, len(channels))
	for _, ch := range channels {
		resp = append(resp, ChannelResponse{ID: ch.ID, Name: ch.Name})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetSegment godoc
// @Summary Get a segment with its topics
// @Tags Catalog
// @Produce json
// @Param id path int true "Segment id"
// @Success 200 {object} SegmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /segment/{id}/ [get]
func (h *ReportHandler) GetSegment(c *fiber.Ctx) error {
	id, err := pathID(c, "segment")
	if err != nil {
		return writeError(c, err)
	}

	seg, err := h.catalog.Segment(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}

	resp := SegmentResponse{
		ID:      seg.ID,
		Channel: seg.Channel,
		StartTS: seg.StartTS,
		EndTS:   seg.EndTS,
		Topics:  make([]TopicResponse, 0, len(seg.Topics)),
	}
	for _, t := range seg.Topics {
		resp.Topics = append(resp.Topics, toTopicResponse(t))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// ListSegments godoc
// @Summary List segments
// @Tags Catalog
// @Produce json
// @Success 200 {array} SegmentSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /segment/ [get]
func (h *ReportHandler) ListSegments(c *fiber.Ctx) error {
	segments, err := h.catalog.Segments(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]SegmentSummaryResponse, 0, len(segments))
	for _, s := range segments {
		resp = append(resp, SegmentSummaryResponse{ID: s.ID, Channel: s.Channel, StartTS: s.StartTS, EndTS: s.EndTS})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// ListTopics godoc
// @Summary List topics
// @Tags Catalog
// @Produce json
// @Success 200 {array} TopicResponse
// @Failure 500 {object} ErrorResponse
// @Router /topic/ [get]
func (h *ReportHandler) ListTopics(c *fiber.Ctx) error {
	topics, err := h.catalog.Topics(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]TopicResponse, 0, len(topics))
	for _, t := range topics {
		resp = append(resp, toTopicResponse(t))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetTopic godoc
// @Summary Get a topic
// @Tags Catalog
// @Produce json
// @Param id path int true "Topic id"
// @Success 200 {object} TopicResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /topic/{id}/ [get]
func (h *ReportHandler) GetTopic(c *fiber.Ctx) error {
	id, err := pathID(c, "topic")
	if err != nil {
		return writeError(c, err)
	}

	topic, err := h.catalog.Topic(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTopicResponse(*topic))
}

// ListAudience godoc
// @Summary List audience readings
// @Description Every stored reading, ordered by timestamp then channel
// @Tags Catalog
// @Produce json
// @Success 200 {array} AudienceResponse
// @Failure 500 {object} ErrorResponse
// @Router /audience/ [get]
func (h *ReportHandler) ListAudience(c *fiber.Ctx) error {
	readings, err := h.catalog.Audience(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]AudienceResponse, 0, len(readings))
	for _, r := range readings {
		resp = append(resp, AudienceResponse{Timestamp: r.Timestamp, Channel: r.Channel, Value: r.Value})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// topicParam tells an absent topic parameter apart from an empty one.
func topicParam(c *fiber.Ctx) (string, error) {
	if !c.Context().QueryArgs().Has("topic") {
		return "", fmt.Errorf("%w: topic", usecase.ErrMissingParameter)
	}
	return c.Query("topic"), nil
}

func pathID(c *fiber.Ctx, kind string) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s id must be a positive integer", usecase.ErrInvalidFormat, kind)
	}
	return int64(id), nil
}

func toTopicResponse(t domain.Topic) TopicResponse {
	return TopicResponse{
		ID:      t.ID,
		Name:    t.Name,
		Count:   t.Count,
		Score:   t.Score,
		Segment: t.Segment.ID,
	}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrMissingParameter):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "missing_parameter",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidFormat):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_format",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrSegmentNotFound), errors.Is(err, usecase.ErrTopicNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
