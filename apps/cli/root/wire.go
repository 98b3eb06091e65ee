package root

import (
	"github.com/zenGate-Global/palmyra-events/apps/cli/cmd/auth"
	"github.com/zenGate-Global/palmyra-events/apps/cli/cmd/db"
	"github.com/zenGate-Global/palmyra-events/apps/cli/cmd/events"
)

func init() {
	Root().AddCommand(auth.Command())
	Root().AddCommand(db.Command())
	Root().AddCommand(events.Command())
}
