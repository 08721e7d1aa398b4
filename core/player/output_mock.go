package player

// MockOutput is a test double for Output. Event callbacks fire synchronously
// from the test goroutine via the Report* helpers, mirroring how a real
// output delivers its notifications one at a time.
type MockOutput struct {
	source  string
	playing bool
	volume  float64
	playErr error

	sourceCalls []string
	seekCalls   []float64

	timeUpdate  func(float64)
	metadata    func(float64)
	ended       func()
	stateChange func(bool)
}

// NewMockOutput creates a mock output for tests.
func NewMockOutput() *MockOutput {
	return &MockOutput{}
}

func (m *MockOutput) SetSource(url string) {
	m.source = url
	m.sourceCalls = append(m.sourceCalls, url)
}

func (m *MockOutput) Play() error {
	if m.playErr != nil {
		return m.playErr
	}
	m.playing = true
	if m.stateChange != nil {
		m.stateChange(true)
	}
	return nil
}

func (m *MockOutput) Pause() {
	m.playing = false
	if m.stateChange != nil {
		m.stateChange(false)
	}
}

func (m *MockOutput) Seek(seconds float64) {
	m.seekCalls = append(m.seekCalls, seconds)
}

func (m *MockOutput) SetVolume(volume float64) { m.volume = volume }

func (m *MockOutput) OnTimeUpdate(fn func(float64)) { m.timeUpdate = fn }
func (m *MockOutput) OnMetadata(fn func(float64))   { m.metadata = fn }
func (m *MockOutput) OnEnded(fn func())             { m.ended = fn }
func (m *MockOutput) OnStateChange(fn func(bool))   { m.stateChange = fn }

func (m *MockOutput) Close() error { return nil }

// Test helpers

func (m *MockOutput) SetPlayError(err error) { m.playErr = err }
func (m *MockOutput) Source() string         { return m.source }
func (m *MockOutput) SourceCalls() []string  { return m.sourceCalls }
func (m *MockOutput) SeekCalls() []float64   { return m.seekCalls }
func (m *MockOutput) Volume() float64        { return m.volume }
func (m *MockOutput) Playing() bool          { return m.playing }

// ReportTime simulates a timeupdate notification.
func (m *MockOutput) ReportTime(seconds float64) {
	if m.timeUpdate != nil {
		m.timeUpdate(seconds)
	}
}

// ReportMetadata simulates the source reporting its duration.
func (m *MockOutput) ReportMetadata(durationSeconds float64) {
	if m.metadata != nil {
		m.metadata(durationSeconds)
	}
}

// ReportEnded simulates natural end of the current track.
func (m *MockOutput) ReportEnded() {
	m.playing = false
	if m.ended != nil {
		m.ended()
	}
}

// Verify MockOutput implements Output at compile time.
var _ Output = (*MockOutput)(nil)
