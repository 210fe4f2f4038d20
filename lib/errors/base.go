package errors

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type Error struct {
	Code    uint                   `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func (o *Error) Serialize() (b []byte, err error) {
	b, err = json.Marshal(o)
	return
}

func (o *Error) Error() string {
	b, _ := o.Serialize()
	return string(b)
}

func (o *Error) SetData(k string, v interface{}) *Error {
	o.Data[k] = v

	return o
}

func (o *Error) Clone() *Error {
	var new Error
	new = *o

	new.Data = map[string]interface{}{}
	if o.Data != nil && len(o.Data) > 0 {
		for k, v := range o.Data {
			new.Data[k] = v
		}
	}

	return &new
}

// Describe renders the message followed by the attached data, sorted by
// key. Multi-line values, like diffs and captured tool output, are
// printed verbatim below their key.
func (o *Error) Describe() string {
	s := o.Message

	var keys []string
	for k := range o.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := fmt.Sprintf("%v", o.Data[k])
		if strings.Contains(v, "\n") {
			s += fmt.Sprintf("\n%s:\n%s", k, strings.TrimRight(v, "\n"))
		} else {
			s += fmt.Sprintf("\n%s: %s", k, v)
		}
	}

	return s
}

func NewError(code uint, message string) *Error {
	return &Error{Code: code, Message: message, Data: map[string]interface{}{}}
}

// Is reports whether err is a *Error carrying the same code as target.
func Is(err error, target *Error) bool {
	e, ok := err.(*Error)
	if !ok || e == nil {
		return false
	}

	return e.Code == target.Code
}
