package fiber

// DateReportResponse maps topic name -> channel name -> mean audience.
// A null mean means no audience reading fell inside the segment.
type DateReportResponse map[string]map[string]*float64

type AudiencePointResponse struct {
	Timestamp int64 `json:"timestamp" example:"1448760420"`
	Value     int64 `json:"value" example:"68798"`
}

type TimelineEntryResponse struct {
	Channel  string                  `json:"channel" example:"A"`
	Audience []AudiencePointResponse `json:"audience"`
}

type SegmentPerformanceResponse struct {
	ID       int64    `json:"id" example:"12"`
	StartTS  int64    `json:"start_ts" example:"1448760000"`
	EndTS    int64    `json:"end_ts" example:"1448760900"`
	Audience *float64 `json:"audience" example:"68798.5"`
}

// BestSegmentsResponse maps channel name -> segments, best audience first.
type BestSegmentsResponse map[string][]SegmentPerformanceResponse

type ChannelResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"A"`
}

type TopicResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name" example:"Election"`
	Count   int     `json:"count"`
	Score   float64 `json:"score"`
	Segment int64   `json:"segment" example:"12"`
}

type SegmentResponse struct {
	ID      int64           `json:"id"`
	Channel string          `json:"channel" example:"A"`
	StartTS int64           `json:"start_ts"`
	EndTS   int64           `json:"end_ts"`
	Topics  []TopicResponse `json:"topics"`
}

type SegmentSummaryResponse struct {
	ID      int64  `json:"id"`
	Channel string `json:"channel" example:"A"`
	StartTS int64  `json:"start_ts"`
	EndTS   int64  `json:"end_ts"`
}

type AudienceResponse struct {
	Timestamp int64  `json:"timestamp" example:"1448760420"`
	Channel   string `json:"channel" example:"A"`
	Value     int64  `json:"value" example:"68798"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"missing_parameter"`
	Message string `json:"message" example:"missing parameter: topic"`
}
