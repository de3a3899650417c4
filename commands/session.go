package commands

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fzft/go-library-containers/ds"
	"github.com/fzft/go-library-containers/log"
)

const historyTimeLayout = "2006-01-02 15:04:05"

// Sizes are the size hints the session containers are created with.
type Sizes struct {
	MapSize       int `toml:"map_size"`
	SetSize       int `toml:"set_size"`
	QueueCapacity int `toml:"queue_capacity"`
}

func DefaultSizes() Sizes {
	return Sizes{
		MapSize:       16,
		SetSize:       16,
		QueueCapacity: ds.DefaultQueueCapacity,
	}
}

// Session owns one instance of every container and executes console lines
// against them. It also keeps a timestamped history of executed lines.
type Session struct {
	list     *ds.List[string]
	cursor   *ds.CursorList[string]
	table    *ds.HashTable[string, string]
	set      *ds.Set[string]
	queue    *ds.Queue[string]
	history  *ds.List[string]
	registry *Registry
	now      func() time.Time
	quit     bool
}

func NewSession(sizes Sizes) *Session {
	s := &Session{
		list:     ds.NewList[string](),
		cursor:   ds.NewCursorList[string](),
		table:    ds.NewHashTable[string, string](sizes.MapSize),
		set:      ds.NewSet[string](sizes.SetSize),
		queue:    ds.NewQueueWithCapacity[string](sizes.QueueCapacity),
		history:  ds.NewList[string](),
		registry: NewRegistry(builtinCommands()...),
		now:      time.Now,
	}
	log.Logger.Debug("session created",
		zap.Int("mapCapacity", s.table.Capacity()),
		zap.Int("queueCapacity", s.queue.Cap()),
		zap.Int("commands", s.registry.Len()))
	return s
}

// Exec runs one console line. Blank lines yield a nil reply and no error.
func (s *Session) Exec(line string) (Reply, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	cmd, ok := s.registry.Lookup(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownCommand, fields[0])
	}
	args := fields[1:]
	if err := cmd.checkArity(len(args)); err != nil {
		return nil, err
	}

	start := s.now()
	reply, err := cmd.Proc(s, args)
	if err != nil {
		log.Logger.Debug("command failed", zap.String("cmd", cmd.Name), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", strings.ToLower(cmd.Name), err)
	}
	log.Logger.Debug("command executed",
		zap.String("cmd", cmd.Name),
		zap.Strings("args", args),
		zap.Duration("took", s.now().Sub(start)))
	s.history.Append(start.Format(historyTimeLayout) + " - " + strings.Join(fields, " "))
	return reply, nil
}

// Quit reports whether QUIT has been executed.
func (s *Session) Quit() bool {
	return s.quit
}

// CommandNames lists every command for completion.
func (s *Session) CommandNames() []string {
	return s.registry.Names()
}

func (s *Session) helpCommand(args []string) (Reply, error) {
	if len(args) == 1 {
		cmd, ok := s.registry.Lookup(args[0])
		if !ok {
			return nil, fmt.Errorf("%w '%s'", ErrUnknownCommand, args[0])
		}
		return StatusReply(cmd.Usage()), nil
	}
	lines := make([]string, 0, s.registry.Len())
	for _, name := range s.registry.Names() {
		cmd, _ := s.registry.Lookup(name)
		lines = append(lines, cmd.Usage())
	}
	return StatusReply(strings.Join(lines, "\n")), nil
}

func (s *Session) historyCommand([]string) (Reply, error) {
	if s.history.IsEmpty() {
		return StatusReply("No activity registered."), nil
	}
	return ArrayReply(slices.Collect(s.history.All())), nil
}
