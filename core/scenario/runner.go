package scenario

import (
	"errors"
	"fmt"

	"level-list/core/diff"
	"level-list/core/sections"

	"go.uber.org/zap"
)

// PreDataType is the item type of caller-owned pre data entries.
// It lies below every type band, so it can never collide with a registration.
const PreDataType = -4000

// ErrDiverged indicates replaying a script did not rebuild the engine's list.
var ErrDiverged = errors.New("replayed list diverged from engine list")

// Result records the outcome of one step.
type Result struct {
	Step    int         `json:"step"`
	Op      string      `json:"op"`
	Dropped bool        `json:"dropped,omitempty"`
	Held    bool        `json:"held,omitempty"`
	Level   int         `json:"level"`
	Ops     diff.Script `json:"ops"`
	Summary diff.Counts `json:"summary"`
	List    []string    `json:"list"`
}

// Runner replays scenario steps against one engine, mirroring the list a renderer would keep.
type Runner struct {
	engine *sections.Engine[Entry]
	logger *zap.Logger
	view   []*sections.Item[Entry]
	held   *sections.Refresh[Entry]
	step   int
}

// NewRunner creates an engine from cfg and registers the scenario sections.
// PreDataCount is taken from the scenario's pre data.
func NewRunner(sc *Scenario, cfg sections.Config, logger *zap.Logger) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.PreDataCount = len(sc.PreData)

	engine, err := sections.New[Entry](cfg, logger)
	if err != nil {
		return nil, err
	}
	for _, s := range sc.Sections {
		err := engine.Register(s.Type, s.Level, sections.LayoutID(s.Layout),
			sections.WithHeaderLayout(sections.LayoutID(s.HeaderLayout)),
			sections.WithPlaceholderLayout(sections.LayoutID(s.PlaceholderLayout)),
			sections.WithPlaceholderHeaderLayout(sections.LayoutID(s.PlaceholderHeaderLayout)),
		)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", s.Type, err)
		}
	}

	pre := make([]*sections.Item[Entry], 0, len(sc.PreData))
	for _, e := range sc.PreData {
		pre = append(pre, &sections.Item[Entry]{Type: PreDataType, ID: e.ID, HeaderKey: sections.NoHeaderKey, Value: e})
	}
	if err := engine.Seed(pre); err != nil {
		return nil, err
	}

	return &Runner{engine: engine, logger: logger, view: engine.Items()}, nil
}

// Engine returns the runner's engine.
func (r *Runner) Engine() *sections.Engine[Entry] {
	return r.engine
}

// Step runs st and returns its result.
func (r *Runner) Step(st Step) (Result, error) {
	idx := r.step
	r.step++
	res := Result{Step: idx, Op: st.Op}

	if st.Op == OpRelease {
		if r.held != nil {
			res.Level = r.held.Level
			if err := r.consume(r.held, &res); err != nil {
				return res, err
			}
			r.held = nil
		}
		res.List = labels(r.view)
		return res, nil
	}

	refresh, err := r.refresh(st)
	if err != nil {
		return res, fmt.Errorf("step %d (%s): %w", idx, st.Op, err)
	}
	if refresh == nil {
		res.Dropped = true
		res.List = labels(r.view)
		return res, nil
	}

	res.Level = refresh.Level
	if st.Hold {
		r.held = refresh
		res.Held = true
		res.Ops = refresh.Script
		res.Summary = refresh.Script.Summary()
		res.List = labels(r.view)
		return res, nil
	}
	if err := r.consume(refresh, &res); err != nil {
		return res, fmt.Errorf("step %d (%s): %w", idx, st.Op, err)
	}
	return res, nil
}

// Run replays every step of sc.
func Run(sc *Scenario, cfg sections.Config, logger *zap.Logger) ([]Result, error) {
	runner, err := NewRunner(sc, cfg, logger)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(sc.Steps))
	for _, st := range sc.Steps {
		res, err := runner.Step(st)
		if err != nil {
			return results, err
		}
		runner.logger.Info("Scenario step",
			zap.Int("step", res.Step),
			zap.String("op", res.Op),
			zap.Bool("dropped", res.Dropped),
			zap.Any("ops", res.Ops),
			zap.Strings("list", res.List),
		)
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) refresh(st Step) (*sections.Refresh[Entry], error) {
	e := r.engine
	switch st.Op {
	case OpData:
		return e.NotifyData(st.Type, items(st.Type, st.Items))
	case OpHeader:
		return e.NotifyHeader(st.Type, header(st.Type, st.Header))
	case OpBoth:
		return e.NotifyDataAndHeader(st.Type, items(st.Type, st.Items), header(st.Type, st.Header))
	case OpPlaceholder:
		return e.NotifyPlaceholderData(st.Type, st.Count)
	case OpPlaceholderHeader:
		return e.NotifyPlaceholderHeader(st.Type)
	case OpPlaceholderBoth:
		return e.NotifyPlaceholderDataAndHeader(st.Type, st.Count)
	case OpMerge:
		mode, err := sections.ParseMode(st.Mode)
		if err != nil {
			return nil, err
		}
		// Merge addresses a level directly, so items carry the step type as given.
		return e.Merge(st.Level, items(st.Type, st.Items), header(st.Type, st.Header), mode)
	default:
		return nil, fmt.Errorf("unknown op %q: %w", st.Op, ErrInvalidStep)
	}
}

// consume replays the script onto the view, checks it against the engine list and releases it.
func (r *Runner) consume(refresh *sections.Refresh[Entry], res *Result) error {
	next, err := diff.Apply(r.view, refresh.Items, refresh.Script)
	if err != nil {
		return err
	}
	if len(next) != len(refresh.Items) {
		return fmt.Errorf("length %d, want %d: %w", len(next), len(refresh.Items), ErrDiverged)
	}
	for i := range next {
		if !sections.SameItem(next[i], refresh.Items[i]) {
			return fmt.Errorf("position %d: %w", i, ErrDiverged)
		}
	}

	r.view = next
	refresh.Release()

	res.Ops = refresh.Script
	res.Summary = refresh.Script.Summary()
	res.List = labels(r.view)
	return nil
}

func items(t int, entries []Entry) []*sections.Item[Entry] {
	out := make([]*sections.Item[Entry], 0, len(entries))
	for _, e := range entries {
		out = append(out, &sections.Item[Entry]{Type: t, ID: e.ID, HeaderKey: int64(t), Value: e})
	}
	return out
}

func header(t int, e *Entry) *sections.Item[Entry] {
	if e == nil {
		return nil
	}
	return &sections.Item[Entry]{Type: sections.HeaderType(t), ID: e.ID, HeaderKey: int64(t), Value: *e}
}

// labels renders the list as titles; placeholders show as "…" and headers get a "#" prefix.
func labels(list []*sections.Item[Entry]) []string {
	out := make([]string, len(list))
	for i, it := range list {
		label := it.Value.Title
		if it.Placeholder {
			label = "…"
		}
		switch sections.BandOf(it.Type) {
		case sections.BandHeader, sections.BandPlaceholderHeader:
			label = "#" + label
		}
		out[i] = label
	}
	return out
}
