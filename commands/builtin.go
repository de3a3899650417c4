package commands

import (
	"slices"
	"strconv"
	"strings"

	"github.com/fzft/go-library-containers/ds"
)

func builtinCommands() []*Command {
	return []*Command{
		{Name: "HELP", Args: "[command]", Summary: "describe commands", MaxArgs: 1, Proc: func(s *Session, args []string) (Reply, error) {
			return s.helpCommand(args)
		}},
		{Name: "HISTORY", Summary: "show executed commands", Proc: func(s *Session, args []string) (Reply, error) {
			return s.historyCommand(args)
		}},
		{Name: "QUIT", Summary: "leave the console", Proc: func(s *Session, _ []string) (Reply, error) {
			s.quit = true
			return SharedOkReply, nil
		}},

		{Name: "LIST.INSERT", Args: "value index", Summary: "insert value at index", MinArgs: 2, MaxArgs: 2, Proc: listInsert},
		{Name: "LIST.APPEND", Args: "value", Summary: "append value", MinArgs: 1, MaxArgs: 1, Proc: listAppend},
		{Name: "LIST.REMOVE", Args: "index", Summary: "remove the value at index", MinArgs: 1, MaxArgs: 1, Proc: listRemove},
		{Name: "LIST.GET", Args: "index", Summary: "get the value at index", MinArgs: 1, MaxArgs: 1, Proc: listGet},
		{Name: "LIST.LEN", Summary: "number of values", Proc: func(s *Session, _ []string) (Reply, error) {
			return IntReply(s.list.Len()), nil
		}},
		{Name: "LIST.SHOW", Summary: "print the list", Proc: func(s *Session, _ []string) (Reply, error) {
			return StatusReply(s.list.String()), nil
		}},

		{Name: "CUR.START", Summary: "move the cursor to the first value", Proc: func(s *Session, _ []string) (Reply, error) {
			s.cursor.Start()
			return SharedOkReply, nil
		}},
		{Name: "CUR.NEXT", Summary: "advance the cursor", Proc: func(s *Session, _ []string) (Reply, error) {
			if err := s.cursor.Next(); err != nil {
				return nil, err
			}
			return SharedOkReply, nil
		}},
		{Name: "CUR.END", Summary: "move the cursor past the last value", Proc: func(s *Session, _ []string) (Reply, error) {
			s.cursor.End()
			return SharedOkReply, nil
		}},
		{Name: "CUR.ISEND", Summary: "is the cursor at the end", Proc: func(s *Session, _ []string) (Reply, error) {
			return boolReply(s.cursor.IsEnd()), nil
		}},
		{Name: "CUR.GET", Summary: "value at the cursor", Proc: func(s *Session, _ []string) (Reply, error) {
			v, err := s.cursor.Get()
			if err != nil {
				return nil, err
			}
			return BulkReply(v), nil
		}},
		{Name: "CUR.INSERT", Args: "value", Summary: "insert value before the cursor", MinArgs: 1, MaxArgs: 1, Proc: func(s *Session, args []string) (Reply, error) {
			s.cursor.Insert(args[0])
			return SharedOkReply, nil
		}},
		{Name: "CUR.REMOVE", Summary: "remove the value at the cursor", Proc: func(s *Session, _ []string) (Reply, error) {
			v, err := s.cursor.Remove()
			if err != nil {
				return nil, err
			}
			return BulkReply(v), nil
		}},
		{Name: "CUR.LEN", Summary: "number of values", Proc: func(s *Session, _ []string) (Reply, error) {
			return IntReply(s.cursor.Len()), nil
		}},
		{Name: "CUR.SHOW", Summary: "print the list", Proc: func(s *Session, _ []string) (Reply, error) {
			return StatusReply(s.cursor.String()), nil
		}},

		{Name: "MAP.PUT", Args: "key value", Summary: "store value under key, returning the old one", MinArgs: 2, MaxArgs: 2, Proc: mapPut},
		{Name: "MAP.GET", Args: "key", Summary: "value stored under key", MinArgs: 1, MaxArgs: 1, Proc: mapGet},
		{Name: "MAP.DEL", Args: "key", Summary: "remove key, returning its value", MinArgs: 1, MaxArgs: 1, Proc: mapDel},
		{Name: "MAP.HAS", Args: "key", Summary: "is key stored", MinArgs: 1, MaxArgs: 1, Proc: func(s *Session, args []string) (Reply, error) {
			return boolReply(s.table.ContainsKey(args[0])), nil
		}},
		{Name: "MAP.SETNX", Args: "key value", Summary: "store value only if key is absent", MinArgs: 2, MaxArgs: 2, Proc: mapSetNX},
		{Name: "MAP.APPEND", Args: "key suffix", Summary: "append suffix to a stored value", MinArgs: 2, MaxArgs: 2, Proc: mapAppend},
		{Name: "MAP.CUT", Args: "key n", Summary: "drop n trailing characters, removing the key when nothing is left", MinArgs: 2, MaxArgs: 2, Proc: mapCut},
		{Name: "MAP.KEYS", Summary: "keys in bucket order", Proc: func(s *Session, _ []string) (Reply, error) {
			return ArrayReply(slices.Collect(s.table.Keys().All())), nil
		}},
		{Name: "MAP.VALUES", Summary: "values in bucket order", Proc: func(s *Session, _ []string) (Reply, error) {
			return ArrayReply(slices.Collect(s.table.Values().All())), nil
		}},
		{Name: "MAP.FIND", Args: "value", Summary: "keys holding value", MinArgs: 1, MaxArgs: 1, Proc: func(s *Session, args []string) (Reply, error) {
			return ArrayReply(slices.Collect(ds.KeysWithValue(s.table, args[0]).All())), nil
		}},
		{Name: "MAP.LEN", Summary: "number of keys", Proc: func(s *Session, _ []string) (Reply, error) {
			return IntReply(s.table.Len()), nil
		}},
		{Name: "MAP.CAP", Summary: "number of buckets", Proc: func(s *Session, _ []string) (Reply, error) {
			return IntReply(s.table.Capacity()), nil
		}},
		{Name: "MAP.LOAD", Summary: "load factor", Proc: func(s *Session, _ []string) (Reply, error) {
			return StatusReply(strconv.FormatFloat(s.table.LoadFactor(), 'f', 2, 64)), nil
		}},
		{Name: "MAP.COLLISIONS", Args: "key", Summary: "length of the chain key hashes to", MinArgs: 1, MaxArgs: 1, Proc: func(s *Session, args []string) (Reply, error) {
			return IntReply(s.table.Collisions(args[0])), nil
		}},
		{Name: "MAP.SHOW", Summary: "print every entry", Proc: func(s *Session, _ []string) (Reply, error) {
			return StatusReply(strings.TrimSuffix(s.table.String(), "\n")), nil
		}},

		{Name: "SET.ADD", Args: "member", Summary: "add member", MinArgs: 1, MaxArgs: 1, Proc: func(s *Session, args []string) (Reply, error) {
			return boolReply(s.set.Add(args[0])), nil
		}},
		{Name: "SET.REM", Args: "member", Summary: "remove member", MinArgs: 1, MaxArgs: 1, Proc: func(s *Session, args []string) (Reply, error) {
			return boolReply(s.set.Remove(args[0])), nil
		}},
		{Name: "SET.HAS", Args: "member", Summary: "is member in the set", MinArgs: 1, MaxArgs: 1, Proc: func(s *Session, args []string) (Reply, error) {
			return boolReply(s.set.Contains(args[0])), nil
		}},
		{Name: "SET.LEN", Summary: "number of members", Proc: func(s *Session, _ []string) (Reply, error) {
			return IntReply(s.set.Len()), nil
		}},
		{Name: "SET.MEMBERS", Summary: "members in bucket order", Proc: func(s *Session, _ []string) (Reply, error) {
			return ArrayReply(slices.Collect(s.set.Elements().All())), nil
		}},

		{Name: "Q.ADD", Args: "value [value ...]", Summary: "enqueue values", MinArgs: 1, MaxArgs: -1, Proc: func(s *Session, args []string) (Reply, error) {
			for _, v := range args {
				s.queue.Add(v)
			}
			return IntReply(s.queue.Len()), nil
		}},
		{Name: "Q.REMOVE", Summary: "dequeue the first value", Proc: func(s *Session, _ []string) (Reply, error) {
			v, err := s.queue.Remove()
			if err != nil {
				return nil, err
			}
			return BulkReply(v), nil
		}},
		{Name: "Q.FIRST", Summary: "peek at the first value", Proc: func(s *Session, _ []string) (Reply, error) {
			v, err := s.queue.First()
			if err != nil {
				return nil, err
			}
			return BulkReply(v), nil
		}},
		{Name: "Q.HAS", Args: "value", Summary: "is value queued", MinArgs: 1, MaxArgs: 1, Proc: func(s *Session, args []string) (Reply, error) {
			return boolReply(s.queue.Contains(args[0])), nil
		}},
		{Name: "Q.LEN", Summary: "number of queued values", Proc: func(s *Session, _ []string) (Reply, error) {
			return IntReply(s.queue.Len()), nil
		}},
		{Name: "Q.CAP", Summary: "backing array size", Proc: func(s *Session, _ []string) (Reply, error) {
			return IntReply(s.queue.Cap()), nil
		}},
		{Name: "Q.SHOW", Summary: "print the queue", Proc: func(s *Session, _ []string) (Reply, error) {
			return StatusReply(s.queue.String()), nil
		}},
	}
}

func listInsert(s *Session, args []string) (Reply, error) {
	i, err := parseIndex(args[1])
	if err != nil {
		return nil, err
	}
	if err := s.list.Insert(args[0], i); err != nil {
		return nil, err
	}
	return IntReply(s.list.Len()), nil
}

func listAppend(s *Session, args []string) (Reply, error) {
	s.list.Append(args[0])
	return IntReply(s.list.Len()), nil
}

func listRemove(s *Session, args []string) (Reply, error) {
	i, err := parseIndex(args[0])
	if err != nil {
		return nil, err
	}
	v, err := s.list.Remove(i)
	if err != nil {
		return nil, err
	}
	return BulkReply(v), nil
}

func listGet(s *Session, args []string) (Reply, error) {
	i, err := parseIndex(args[0])
	if err != nil {
		return nil, err
	}
	v, err := s.list.Get(i)
	if err != nil {
		return nil, err
	}
	return BulkReply(v), nil
}

func mapPut(s *Session, args []string) (Reply, error) {
	old, ok := s.table.Put(args[0], args[1])
	if !ok {
		return SharedNullReply, nil
	}
	return BulkReply(old), nil
}

func mapGet(s *Session, args []string) (Reply, error) {
	v, ok := s.table.Get(args[0])
	if !ok {
		return SharedNullReply, nil
	}
	return BulkReply(v), nil
}

func mapDel(s *Session, args []string) (Reply, error) {
	v, ok := s.table.Remove(args[0])
	if !ok {
		return SharedNullReply, nil
	}
	return BulkReply(v), nil
}

func mapSetNX(s *Session, args []string) (Reply, error) {
	stored := false
	s.table.ComputeIfAbsent(args[0], func(string) (string, bool) {
		stored = true
		return args[1], true
	})
	return boolReply(stored), nil
}

func mapAppend(s *Session, args []string) (Reply, error) {
	v, ok := s.table.ComputeIfPresent(args[0], func(_, cur string) (string, bool) {
		return cur + args[1], true
	})
	if !ok {
		return SharedNullReply, nil
	}
	return BulkReply(v), nil
}

func mapCut(s *Session, args []string) (Reply, error) {
	n, err := parseIndex(args[1])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrBadArgument
	}
	v, ok := s.table.ComputeIfPresent(args[0], func(_, cur string) (string, bool) {
		if n >= len(cur) {
			return "", false
		}
		return cur[:len(cur)-n], true
	})
	if !ok {
		return SharedNullReply, nil
	}
	return BulkReply(v), nil
}
