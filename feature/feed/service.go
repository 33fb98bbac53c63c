package feed

import (
	"context"
	"errors"
	"fmt"

	"level-list/core/diff"
	"level-list/core/sections"
	"level-list/feature/feed/models"

	"go.uber.org/zap"
)

// ErrDropped indicates a refresh arrived while another was still pending.
var ErrDropped = errors.New("refresh dropped while another is pending")

// ErrUnknownSection indicates a section type that is not configured.
var ErrUnknownSection = errors.New("unknown section")

// Update describes one applied refresh.
type Update struct {
	Type    int         `json:"type"`
	Level   int         `json:"level"`
	Mode    string      `json:"mode"`
	Ops     diff.Script `json:"ops"`
	Summary diff.Counts `json:"summary"`
	Size    int         `json:"size"`
}

// ViewItem is one position of the feed as a client renders it.
type ViewItem struct {
	Position    int    `json:"position"`
	Type        int    `json:"type"`
	Band        string `json:"band"`
	Layout      int    `json:"layout"`
	HeaderKey   int64  `json:"header_key"`
	ID          int64  `json:"id"`
	Placeholder bool   `json:"placeholder"`
	Title       string `json:"title,omitempty"`
	Body        string `json:"body,omitempty"`
}

// View is the whole feed plus the last applied update.
type View struct {
	Items []ViewItem `json:"items"`
	Last  *Update    `json:"last,omitempty"`
}

// Service owns the feed list engine and refreshes its sections from a source.
type Service struct {
	engine *sections.Engine[models.Row]
	worker *sections.Worker[models.Row]
	source Source
	known  map[int]Section
	cfg    Config
	logger *zap.Logger
	last   *Update
}

// NewService creates a service for the configured sections.
func NewService(cfg Config, list sections.Config, source Source, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	specs, err := ParseSections(cfg.Sections)
	if err != nil {
		return nil, err
	}

	engine, err := sections.New[models.Row](list, logger.Named("sections"))
	if err != nil {
		return nil, err
	}

	known := make(map[int]Section, len(specs))
	for _, sec := range specs {
		data, header, ph, phHeader := sec.Layouts()
		err := engine.Register(sec.Type, sec.Level, data,
			sections.WithHeaderLayout(header),
			sections.WithPlaceholderLayout(ph),
			sections.WithPlaceholderHeaderLayout(phHeader),
		)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", sec.Type, err)
		}
		known[sec.Type] = sec
	}

	return &Service{
		engine: engine,
		worker: sections.NewWorker(engine, cfg.QueueSize),
		source: NewSharedSource(source),
		known:  known,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Run serves the engine until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	return s.worker.Run(ctx)
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// Check verifies the source and warns about configured sections it has no content for.
func (s *Service) Check(ctx context.Context) error {
	if err := s.source.Check(ctx); err != nil {
		return fmt.Errorf("%s source: %w", s.source.Name(), err)
	}

	lister, ok := unwrap(s.source).(interface {
		Types(ctx context.Context) ([]int, error)
	})
	if !ok {
		return nil
	}
	types, err := lister.Types(ctx)
	if err != nil {
		return err
	}
	present := make(map[int]struct{}, len(types))
	for _, t := range types {
		present[t] = struct{}{}
	}
	for t := range s.known {
		if _, ok := present[t]; !ok {
			s.logger.Warn("Section has no content", zap.Int("type", t), zap.String("source", s.source.Name()))
		}
	}
	return nil
}

// Refresh reloads section t from the source and merges it according to mode.
func (s *Service) Refresh(ctx context.Context, t int, mode sections.Mode) (*Update, error) {
	if _, ok := s.known[t]; !ok {
		return nil, fmt.Errorf("type %d: %w", t, ErrUnknownSection)
	}

	loadCtx, cancel := context.WithTimeout(ctx, s.cfg.LoadTimeout())
	defer cancel()
	sec, err := s.source.Load(loadCtx, t)
	if err != nil {
		return nil, err
	}
	data, header := toItems(t, sec)

	return s.apply(ctx, t, func(e *sections.Engine[models.Row]) (*sections.Refresh[models.Row], error) {
		switch mode {
		case sections.ModeData:
			return e.NotifyData(t, data)
		case sections.ModeHeader:
			return e.NotifyHeader(t, header)
		default:
			return e.NotifyDataAndHeader(t, data, header)
		}
	})
}

// Shimmer shows count loading placeholders for section t according to mode.
func (s *Service) Shimmer(ctx context.Context, t, count int, mode sections.Mode) (*Update, error) {
	if _, ok := s.known[t]; !ok {
		return nil, fmt.Errorf("type %d: %w", t, ErrUnknownSection)
	}

	return s.apply(ctx, t, func(e *sections.Engine[models.Row]) (*sections.Refresh[models.Row], error) {
		switch mode {
		case sections.ModeData:
			return e.NotifyPlaceholderData(t, count)
		case sections.ModeHeader:
			return e.NotifyPlaceholderHeader(t)
		default:
			return e.NotifyPlaceholderDataAndHeader(t, count)
		}
	})
}

// Snapshot returns the current feed.
func (s *Service) Snapshot(ctx context.Context) (*View, error) {
	var view *View
	err := s.worker.Do(ctx, func(e *sections.Engine[models.Row]) error {
		view = &View{Items: make([]ViewItem, 0, e.Len()), Last: s.last}
		for pos, it := range e.Items() {
			view.Items = append(view.Items, ViewItem{
				Position:    pos,
				Type:        it.Type,
				Band:        sections.BandOf(it.Type).String(),
				Layout:      int(e.LayoutOf(e.ViewTypeOf(pos))),
				HeaderKey:   e.HeaderKeyOf(pos),
				ID:          it.ID,
				Placeholder: it.Placeholder,
				Title:       it.Value.Title,
				Body:        it.Value.Body,
			})
		}
		return nil
	})
	return view, err
}

// apply runs merge on the engine goroutine and consumes the refresh immediately.
func (s *Service) apply(ctx context.Context, t int, merge func(*sections.Engine[models.Row]) (*sections.Refresh[models.Row], error)) (*Update, error) {
	var update *Update
	err := s.worker.Do(ctx, func(e *sections.Engine[models.Row]) error {
		r, err := merge(e)
		if err != nil {
			return err
		}
		if r == nil {
			return ErrDropped
		}
		defer r.Release()

		update = &Update{
			Type:    t,
			Level:   r.Level,
			Mode:    r.Mode.String(),
			Ops:     r.Script,
			Summary: r.Script.Summary(),
			Size:    len(r.Items),
		}
		s.last = update
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Section refreshed",
		zap.Int("type", t),
		zap.String("mode", update.Mode),
		zap.Int("ops", len(update.Ops)),
		zap.Int("size", update.Size),
	)
	return update, nil
}

func toItems(t int, sec models.Section) ([]*sections.Item[models.Row], *sections.Item[models.Row]) {
	data := make([]*sections.Item[models.Row], 0, len(sec.Rows))
	for _, row := range sec.Rows {
		data = append(data, &sections.Item[models.Row]{
			Type:      t,
			ID:        row.ID,
			HeaderKey: int64(t),
			Value:     row,
		})
	}

	var header *sections.Item[models.Row]
	if sec.Header != nil {
		header = &sections.Item[models.Row]{
			Type:      sections.HeaderType(t),
			ID:        sec.Header.ID,
			HeaderKey: int64(t),
			Value:     *sec.Header,
		}
	}
	return data, header
}

func unwrap(src Source) Source {
	if shared, ok := src.(*SharedSource); ok {
		return shared.Source
	}
	return src
}
