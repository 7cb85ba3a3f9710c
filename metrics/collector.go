package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"minimax/game"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Engine    string
	Nodes     int
	Terminals int
	MaxDepth  int
	Duration  time.Duration
}

type MoveMetric struct {
	Step     int
	Player   game.Player
	Move     string
	Duration time.Duration
}

type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer for a draw or a turn limit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers statistics for one search at a time. The engines call
// Start on entry, AddNode for every node they create (root at depth 0) and
// AddTerminal for every terminal node they resolve.
type Collector interface {
	Start(engine string)
	AddNode(depth int)
	AddTerminal()
	Complete() SearchMetric
}

// Sink receives every completed search.
type Sink interface {
	Observe(metric SearchMetric)
}

type collector struct {
	engine    string
	startTime time.Time
	nodes     atomic.Int64
	terminals atomic.Int64
	maxDepth  atomic.Int64
	sinks     []Sink
}

func NewCollector(sinks ...Sink) Collector {
	return &collector{sinks: sinks}
}

func (m *collector) Start(engine string) {
	m.engine = engine
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddNode(depth int) {
	m.nodes.Add(1)
	for {
		current := m.maxDepth.Load()
		if int64(depth) <= current || m.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() SearchMetric {
	metric := SearchMetric{
		Engine:    m.engine,
		Nodes:     int(m.nodes.Load()),
		Terminals: int(m.terminals.Load()),
		MaxDepth:  int(m.maxDepth.Load()),
		Duration:  time.Since(m.startTime),
	}
	for _, sink := range m.sinks {
		sink.Observe(metric)
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(engine string)    {}
func (m *dummyCollector) AddNode(depth int)      {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }

// Recorder is a Sink that keeps every observed search in order.
type Recorder struct {
	sync.Mutex
	metrics []SearchMetric
}

func (r *Recorder) Observe(metric SearchMetric) {
	r.Lock()
	defer r.Unlock()

	r.metrics = append(r.metrics, metric)
}

func (r *Recorder) Metrics() []SearchMetric {
	r.Lock()
	defer r.Unlock()

	return append([]SearchMetric(nil), r.metrics...)
}

// Last returns the most recent search, if any.
func (r *Recorder) Last() (SearchMetric, bool) {
	r.Lock()
	defer r.Unlock()

	if len(r.metrics) == 0 {
		return SearchMetric{}, false
	}
	return r.metrics[len(r.metrics)-1], true
}
