package common

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	logging "github.com/inconshreveable/log15"

	"github.com/votrify/votrify/lib/errors"
)

var (
	DefaultLogLevel   logging.Lvl     = logging.LvlInfo
	DefaultLogHandler logging.Handler = logging.StreamHandler(os.Stderr, logging.TerminalFormat())
)

// LogFormatErrorKey carries the failure to encode a record.
const LogFormatErrorKey = "log-error"

// logValue turns a context value into something json can render. Coded
// errors keep their code and data.
func logValue(value interface{}) interface{} {
	switch v := value.(type) {
	case *errors.Error:
		if v == nil {
			return nil
		}
		return v
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case time.Duration:
		return v.String()
	case []byte:
		return string(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return v
	}
}

// JSONLogFormat writes one JSON object per record, for log output that is
// not a terminal.
func JSONLogFormat() logging.Format {
	return logging.FormatFunc(func(r *logging.Record) []byte {
		props := map[string]interface{}{
			r.KeyNames.Time: r.Time.Format(time.RFC3339Nano),
			r.KeyNames.Lvl:  r.Lvl.String(),
			r.KeyNames.Msg:  r.Msg,
		}

		for i := 0; i+1 < len(r.Ctx); i += 2 {
			k, ok := r.Ctx[i].(string)
			if !ok {
				k = fmt.Sprintf("%v", r.Ctx[i])
			}
			props[k] = logValue(r.Ctx[i+1])
		}

		b, err := json.Marshal(props)
		if err != nil {
			b, _ = json.Marshal(map[string]string{
				r.KeyNames.Msg:    r.Msg,
				LogFormatErrorKey: err.Error(),
			})
		}

		return append(b, '\n')
	})
}
