package confirmation

import (
	logging "github.com/inconshreveable/log15"

	"github.com/votrify/votrify/lib/common"
)

var log logging.Logger = logging.New("module", "confirmation")

func init() {
	SetLogging(common.DefaultLogLevel, common.DefaultLogHandler)
}

func SetLogging(level logging.Lvl, handler logging.Handler) {
	log.SetHandler(logging.LvlFilterHandler(level, handler))
}
