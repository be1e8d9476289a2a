package domain

// Window is a closed time interval [From, To] in unix seconds.
type Window struct {
	From int64 // unix second
	To   int64 // unix second
}

func (w Window) Contains(ts int64) bool {
	return ts >= w.From && ts <= w.To
}

// ChannelWindow scopes a window to one channel.
type ChannelWindow struct {
	Channel string
	Window
}

type Channel struct {
	ID   int64
	Name string
}

type Segment struct {
	ID      int64
	Channel string
	StartTS int64
	EndTS   int64
	Topics  []Topic // only filled by single segment lookups
}

func (s Segment) Window() Window {
	return Window{From: s.StartTS, To: s.EndTS}
}

type Topic struct {
	ID      int64
	Name    string
	Count   int
	Score   float64
	Segment Segment
}

// Reading is one audience sample of a channel.
type Reading struct {
	Timestamp int64
	Channel   string
	Value     int64
}

// Mean is the mean audience of a window. nil means no reading fell inside
// the window, which is not the same as zero viewers.
type Mean = *float64

// DateReport maps topic name -> channel name -> mean audience.
type DateReport map[string]map[string]Mean

type AudiencePoint struct {
	Timestamp int64
	Value     int64
}

type ChannelSeries struct {
	Channel  string
	Audience []AudiencePoint
}

type RankedSegment struct {
	ID       int64
	StartTS  int64
	EndTS    int64
	Audience Mean
}

// ChannelSegments holds one channel's segments, best audience first.
type ChannelSegments struct {
	Channel  string
	Segments []RankedSegment
}
