package fiber

// SegmentRecordRequest is one segment of a bulk segments load
// @Description Segment with its topics
type SegmentRecordRequest struct {
	Channel string               `json:"channel" example:"A"`
	StartTS int64                `json:"start_ts" example:"1577836800"`
	EndTS   int64                `json:"end_ts" example:"1577837400"`
	Topics  []TopicRecordRequest `json:"topics"`
}

type TopicRecordRequest struct {
	Name  string  `json:"name" example:"Election"`
	Count int     `json:"count" example:"3"`
	Score float64 `json:"score" example:"0.92"`
}

type LoadResponse struct {
	LoadID         string `json:"load_id"`
	Family         string `json:"family" example:"segments"`
	Deleted        int64  `json:"deleted"`
	Inserted       int64  `json:"inserted"`
	TopicsInserted int64  `json:"topics_inserted,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_record"`
	Message string `json:"message,omitempty" example:"segment 0: unknown channel \"Z\""`
}
