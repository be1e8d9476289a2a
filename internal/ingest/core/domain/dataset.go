package domain

type TopicRecord struct {
	Name  string
	Count int
	Score float64
}

// SegmentRecord is one segment as it arrives from a dataset, channel by name.
type SegmentRecord struct {
	Channel string
	StartTS int64
	EndTS   int64
	Topics  []TopicRecord
}

// Segment is a validated SegmentRecord with its channel resolved to an id.
type Segment struct {
	ChannelID int64
	StartTS   int64
	EndTS     int64
	Topics    []TopicRecord
}

type Reading struct {
	Timestamp int64
	ChannelID int64
	Value     int64
}

// LoadStats counts rows touched by one wholesale replace.
type LoadStats struct {
	Deleted        int64
	Inserted       int64
	TopicsInserted int64
}

type LoadResult struct {
	LoadID string
	Family string
	LoadStats
}
