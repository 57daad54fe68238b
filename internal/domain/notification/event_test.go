package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEvent_EffectiveKind(t *testing.T) {
	ev := &Event{ID: "ntf_1", RecipientID: "usr_1", Kind: KindReply}
	assert.Equal(t, KindReply, ev.EffectiveKind())

	ev.Details = &Details{TrueType: strPtr("quote")}
	assert.Equal(t, KindQuote, ev.EffectiveKind(), "true_type should override the row kind")

	ev.Details.TrueType = strPtr("")
	assert.Equal(t, KindReply, ev.EffectiveKind(), "empty true_type should be ignored")
}

func TestEvent_TargetPostID(t *testing.T) {
	ev := &Event{
		ID:          "ntf_1",
		RecipientID: "usr_1",
		Kind:        KindQuote,
		PostID:      strPtr("pst_wrapping"),
	}

	require.NotNil(t, ev.TargetPostID())
	assert.Equal(t, "pst_wrapping", *ev.TargetPostID())

	ev.Details = &Details{QuotedPostID: strPtr("pst_quoted")}
	require.NotNil(t, ev.TargetPostID())
	assert.Equal(t, "pst_quoted", *ev.TargetPostID(), "quoted post wins over the wrapping reply")
}

func TestEvent_Validate(t *testing.T) {
	valid := &Event{ID: "ntf_1", RecipientID: "usr_1", Kind: KindLike, CreatedAt: time.Now()}
	assert.NoError(t, valid.Validate())

	missingID := &Event{RecipientID: "usr_1"}
	assert.Error(t, missingID.Validate())

	missingRecipient := &Event{ID: "ntf_1"}
	assert.Error(t, missingRecipient.Validate())
}
