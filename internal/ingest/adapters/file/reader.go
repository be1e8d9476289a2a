package file

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"newsdesk-service/internal/ingest/core/domain"
)

const maxLineBytes = 4 << 20

type segmentLine struct {
	Channel string      `json:"channel"`
	StartTS int64       `json:"start_ts"`
	EndTS   int64       `json:"end_ts"`
	Topics  []topicLine `json:"topics"`
}

type topicLine struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Score float64 `json:"score"`
}

// ReadSegments decodes one JSON segment object per line. Blank lines are
// skipped.
func ReadSegments(r io.Reader) ([]domain.SegmentRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var out []domain.SegmentRecord
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		var sl segmentLine
		if err := json.Unmarshal(line, &sl); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		rec := domain.SegmentRecord{
			Channel: sl.Channel,
			StartTS: sl.StartTS,
			EndTS:   sl.EndTS,
			Topics:  make([]domain.TopicRecord, 0, len(sl.Topics)),
		}
		for _, t := range sl.Topics {
			rec.Topics = append(rec.Topics, domain.TopicRecord{Name: t.Name, Count: t.Count, Score: t.Score})
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}
	return out, nil
}

// ReadAudience decodes a single JSON object mapping epoch strings to
// per-channel value arrays.
func ReadAudience(r io.Reader) (map[string][]int64, error) {
	var out map[string][]int64
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode audience: %w", err)
	}
	return out, nil
}

func ReadSegmentsFile(path string) ([]domain.SegmentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSegments(f)
}

func ReadAudienceFile(path string) (map[string][]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadAudience(f)
}
