package commands

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fzft/go-library-containers/ds"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArity     = errors.New("wrong number of arguments")
	ErrBadArgument    = errors.New("bad argument")
)

// Proc executes a command against a session. args excludes the command name.
type Proc func(s *Session, args []string) (Reply, error)

// Command describes one console command.
type Command struct {
	Name    string
	Args    string
	Summary string
	MinArgs int
	MaxArgs int // -1 means no limit
	Proc    Proc
}

func (c *Command) checkArity(n int) error {
	if n < c.MinArgs || c.MaxArgs >= 0 && n > c.MaxArgs {
		return fmt.Errorf("%w for '%s'", ErrWrongArity, strings.ToLower(c.Name))
	}
	return nil
}

// Usage renders the command as shown by HELP.
func (c *Command) Usage() string {
	if c.Args == "" {
		return fmt.Sprintf("%s - %s", c.Name, c.Summary)
	}
	return fmt.Sprintf("%s %s - %s", c.Name, c.Args, c.Summary)
}

// Registry maps upper-case command names to commands.
type Registry struct {
	table *ds.HashTable[string, *Command]
}

func NewRegistry(commands ...*Command) *Registry {
	r := &Registry{table: ds.NewHashTable[string, *Command](len(commands))}
	for _, c := range commands {
		r.Register(c)
	}
	return r
}

// Register adds c, replacing any command with the same name.
func (r *Registry) Register(c *Command) {
	r.table.Put(strings.ToUpper(c.Name), c)
}

// Lookup finds a command by name, ignoring case.
func (r *Registry) Lookup(name string) (*Command, bool) {
	return r.table.Get(strings.ToUpper(name))
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.table.Len())
	r.table.ForEach(func(name string, _ *Command) {
		names = append(names, name)
	})
	slices.Sort(names)
	return names
}

func (r *Registry) Len() int {
	return r.table.Len()
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadArgument, s)
	}
	return i, nil
}
