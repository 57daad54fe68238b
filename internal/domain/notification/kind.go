package notification

// Kind classifies the forum event that produced a notification.
// The set is open: rows written by newer application versions may carry
// kinds this binary does not know, and those must degrade gracefully
// instead of failing.
type Kind string

const (
	KindReply        Kind = "reply"
	KindLike         Kind = "like"
	KindMentionReply Kind = "mention_reply"
	KindMentionPost  Kind = "mention_post"
	KindQuote        Kind = "quote"
	KindSystem       Kind = "system"
)

var knownKinds = map[Kind]bool{
	KindReply:        true,
	KindLike:         true,
	KindMentionReply: true,
	KindMentionPost:  true,
	KindQuote:        true,
	KindSystem:       true,
}

func (k Kind) String() string {
	return string(k)
}

// IsKnown reports whether this kind has a dedicated message template.
func (k Kind) IsKnown() bool {
	return knownKinds[k]
}
