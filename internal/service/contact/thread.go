package contact

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	HeaderInReplyTo  = "In-Reply-To"
	HeaderReferences = "References"
	HeaderReplyTo    = "Reply-To"
)

// ThreadHeaders rebuilds the email threading headers for an inquiry: the
// acknowledgement's Message-ID followed by every reply's, oldest first.
// Absent ids (a send that never happened) are filtered out, never rendered
// as empty tokens. No ids at all yields an empty map, so callers can tell
// "no threading info" from "threading info present but blank".
//
// The function only reads; calling it twice with unchanged data returns
// identical output, so it is safe to call speculatively while a reply is
// being composed.
func (s *contactService) ThreadHeaders(ctx context.Context, id uuid.UUID) (map[string]string, error) {
	inquiryMsgID, err := s.store.InquiryMessageID(ctx, id)
	if err != nil {
		return nil, err
	}

	replyMsgIDs, err := s.store.ReplyMessageIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(replyMsgIDs)+1)
	if inquiryMsgID != nil && *inquiryMsgID != "" {
		ids = append(ids, *inquiryMsgID)
	}
	for _, m := range replyMsgIDs {
		if m != nil && *m != "" {
			ids = append(ids, *m)
		}
	}

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	return map[string]string{
		HeaderInReplyTo:  ids[len(ids)-1],
		HeaderReferences: strings.Join(ids, " "),
	}, nil
}
