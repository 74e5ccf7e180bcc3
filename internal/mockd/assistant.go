package mockd

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

// Canned assistant openers, picked deterministically so tests can assert
// on reply shape without a model behind the mock.
var assistantOpeners = []string{
	"Let's break that down.",
	"Good question for this stage of the project.",
	"Here is how I would approach it.",
	"A few things to consider.",
}

func assistantReply(convID, userBody string) models.Message {
	opener := assistantOpeners[len(userBody)%len(assistantOpeners)]
	return models.Message{
		ID:             "msg-" + uuid.NewString(),
		ConversationID: convID,
		Role:           models.RoleAssistant,
		Author:         "ignacio",
		Body:           fmt.Sprintf("%s You said: %q. (mock reply)", opener, userBody),
		TS:             time.Now().UTC().UnixNano(),
	}
}
