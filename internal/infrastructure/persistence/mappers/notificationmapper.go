package mappers

import (
	"encoding/json"

	"aircast/internal/domain/forum"
	"aircast/internal/domain/notification"
	"aircast/internal/infrastructure/persistence/models"
)

type NotificationMapper struct{}

func NewNotificationMapper() NotificationMapper {
	return NotificationMapper{}
}

// ToEvent converts a row into its domain event. The conversion never
// fails: an unparseable details payload degrades to absent details,
// matching the pipeline's tolerance for partially migrated rows.
func (NotificationMapper) ToEvent(m *models.NotificationModel) *notification.Event {
	ev := &notification.Event{
		ID:             m.SID,
		RecipientID:    m.RecipientSID,
		ActorID:        m.ActorSID,
		Kind:           notification.Kind(m.Kind),
		TopicID:        m.TopicSID,
		PostID:         m.PostSID,
		ContentPreview: m.ContentPreview,
		Read:           m.ReadStatus == "read",
		CreatedAt:      m.CreatedAt,
	}

	if len(m.Details) > 0 {
		var d notification.Details
		if err := json.Unmarshal(m.Details, &d); err == nil {
			ev.Details = &d
		}
	}

	if m.Actor != nil {
		username := m.Actor.Username
		ev.Actor = &forum.Profile{
			ID:          m.Actor.SID,
			DisplayName: m.Actor.DisplayName,
			Username:    &username,
			AvatarURL:   m.Actor.AvatarURL,
		}
	}

	return ev
}

func (mp NotificationMapper) ToEvents(rows []*models.NotificationModel) []*notification.Event {
	if rows == nil {
		return nil
	}
	events := make([]*notification.Event, 0, len(rows))
	for _, m := range rows {
		if m != nil {
			events = append(events, mp.ToEvent(m))
		}
	}
	return events
}
