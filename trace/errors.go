package trace

import "fmt"

type TraceError struct {
	Seq     uint64 `json:"seq"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *TraceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("trace error(seq=%d reason=%s): %s", e.Seq, e.Reason, e.Message)
}
