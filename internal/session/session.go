// Package session holds the state of one annotation run: the loaded video,
// the results of the most recent analysis, and the playback position used to
// select the caption currently on screen.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/b08x/video-annotator/internal/analyze"
	"github.com/b08x/video-annotator/internal/annotation"
	"github.com/b08x/video-annotator/internal/playback"
	"github.com/b08x/video-annotator/internal/subtitle"
)

// video currently loaded for annotation
type Video struct {
	DisplayName     string
	URI             string
	MIMEType        string
	DurationSeconds float64
}

// Session accumulates analysis results for a loaded video. Safe for
// concurrent use. Completing an analysis requires the token handed out when
// it began, so a slow response from an older run can never overwrite a
// newer one.
type Session struct {
	mu  sync.Mutex
	log *zap.SugaredLogger

	video *Video
	mode  string

	gen       uint64
	activeGen uint64

	annotations []annotation.Annotation
	kind        annotation.Kind
	segments    []annotation.TopicSegment
	structured  json.RawMessage
	modelText   string
	skipped     int

	playhead playback.State
}

func New(log *zap.SugaredLogger) *Session {
	return &Session{log: log}
}

// LoadVideo replaces the current video and clears any previous results.
func (s *Session) LoadVideo(v Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.video = &v
	s.clearResults()
	s.playhead = playback.State{DurationSeconds: v.DurationSeconds}
	s.log.Infow("video loaded",
		"displayName", v.DisplayName,
		"duration", v.DurationSeconds,
	)
}

func (s *Session) Video() *Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.video
}

func (s *Session) clearResults() {
	s.annotations = nil
	s.kind = ""
	s.segments = nil
	s.structured = nil
	s.modelText = ""
	s.skipped = 0
}

// BeginAnalysis records the active mode, clears prior results, and returns
// the token the completing call must present.
func (s *Session) BeginAnalysis(mode string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.activeGen = s.gen
	s.mode = mode
	s.clearResults()
	return s.gen
}

// AnalysisMode returns the mode of the most recently started analysis.
func (s *Session) AnalysisMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// CompleteAnalysis applies a model response to the session. It returns false
// without touching state when the token is stale, meaning a newer analysis
// has started since this one began.
func (s *Session) CompleteAnalysis(token uint64, resp *analyze.Response) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.activeGen {
		s.log.Infow("discarding stale analysis result",
			"token", token,
			"active", s.activeGen,
		)
		return false
	}

	s.modelText = resp.Text

	for _, call := range resp.Calls {
		result, err := annotation.Normalize(call)
		if err != nil {
			s.log.Warnw("skipping malformed function call",
				"function", call.Name,
				"error", err,
			)
			continue
		}
		s.apply(result)
	}

	if len(resp.Calls) == 0 {
		s.log.Infow("model returned no function calls", "text", resp.Text)
	}

	return true
}

func (s *Session) apply(result annotation.Result) {
	s.skipped += result.Skipped

	switch result.Kind {
	case annotation.KindTopicSegments:
		s.segments = result.Segments
	case annotation.KindStructured:
		s.structured = result.Structured
	case annotation.KindUnrecognized:
		s.log.Warnw("unrecognized function call ignored")
	default:
		s.annotations = result.Annotations
		s.kind = result.Kind
	}
}

func (s *Session) Annotations() []annotation.Annotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.annotations
}

func (s *Session) Kind() annotation.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind
}

func (s *Session) Segments() []annotation.TopicSegment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.segments
}

func (s *Session) Structured() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.structured
}

func (s *Session) ModelText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modelText
}

func (s *Session) Skipped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skipped
}

// ReplaceAnnotations swaps in a translated sequence of the same length.
func (s *Session) ReplaceAnnotations(anns []annotation.Annotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(anns) != len(s.annotations) {
		return fmt.Errorf(
			"replacement has %d entries, current sequence has %d",
			len(anns), len(s.annotations),
		)
	}
	s.annotations = anns
	return nil
}

// ReplaceSegments swaps in a translated segment list of the same length.
func (s *Session) ReplaceSegments(segments []annotation.TopicSegment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(segments) != len(s.segments) {
		return fmt.Errorf(
			"replacement has %d segments, current list has %d",
			len(segments), len(s.segments),
		)
	}
	s.segments = segments
	return nil
}

// Seek moves the playhead. Positions are clamped at zero.
func (s *Session) Seek(positionSeconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if positionSeconds < 0 {
		positionSeconds = 0
	}
	s.playhead.PositionSeconds = positionSeconds
}

func (s *Session) Playhead() playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playhead
}

// Markers returns the timeline position of each annotation as a percentage
// of the video duration. Empty when the duration is unknown.
func (s *Session) Markers() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	markers := make([]float64, 0, len(s.annotations))
	for _, ann := range s.annotations {
		if percent, ok := playback.MarkerPercent(ann, s.playhead.DurationSeconds); ok {
			markers = append(markers, percent)
		}
	}
	return markers
}

// ActiveCaption returns the caption for the current playhead position.
func (s *Session) ActiveCaption() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return playback.ActiveCaption(s.annotations, s.playhead.PositionSeconds)
}

// Export renders the session's results as a subtitle file. Topic segments
// take priority over captions when both are present.
func (s *Session) Export(format subtitle.Format) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video == nil {
		return "", "", fmt.Errorf("no video loaded")
	}

	if len(s.segments) > 0 {
		return subtitle.ExportSegments(format, s.segments, s.video.DisplayName)
	}
	return subtitle.ExportAnnotations(
		format,
		s.annotations,
		s.video.DurationSeconds,
		s.video.DisplayName,
	)
}

// ExportVTT renders the results as WebVTT.
func (s *Session) ExportVTT() (string, string, error) {
	return s.Export(subtitle.FormatVTT)
}
