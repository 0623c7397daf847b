package cas

import (
	"github.com/kumar-cherry/cas/internal/adapters/driven/outbound"
)

// Re-export outbound context adapter
type MessageContext = outbound.MessageContext

var NewMessageContext = outbound.NewMessageContext
