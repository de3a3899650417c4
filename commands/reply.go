package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// Reply is the result of a command as shown on the console.
type Reply interface {
	String() string
}

// StatusReply is shown verbatim.
type StatusReply string

func (r StatusReply) String() string {
	return string(r)
}

type NullReply struct{}

func (NullReply) String() string {
	return "(nil)"
}

type IntReply int

func (r IntReply) String() string {
	return fmt.Sprintf("(integer) %d", int(r))
}

// BulkReply is a single stored value, shown quoted.
type BulkReply string

func (r BulkReply) String() string {
	return strconv.Quote(string(r))
}

// ArrayReply is a sequence of stored values, one numbered line each.
type ArrayReply []string

func (r ArrayReply) String() string {
	if len(r) == 0 {
		return "(empty array)"
	}
	var b strings.Builder
	for i, s := range r {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d) %s", i+1, strconv.Quote(s))
	}
	return b.String()
}

func boolReply(b bool) IntReply {
	if b {
		return 1
	}
	return 0
}

var (
	SharedOkReply   = StatusReply("OK")
	SharedNullReply = NullReply{}
)
