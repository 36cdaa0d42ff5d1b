package notifications

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	InstanceCreated string = "InstanceCreated"
	InstanceUpdated string = "InstanceUpdated"
	TemplateCreated string = "TemplateCreated"
)

type Notification struct {
	Id         string          `json:"id"`
	Type       string          `json:"type"`
	NotifiedAt string          `json:"notifiedAt"`
	Data       json.RawMessage `json:"data"`
}

// NewNotification wraps the JSON representation of a changed object.
func NewNotification(notificationType string, data json.Marshaler) (*Notification, error) {
	body, err := data.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification data: %w", err)
	}

	return &Notification{
		Id:         fmt.Sprintf("urn:template-broker:Notification:%s", uuid.New().String()),
		Type:       notificationType,
		NotifiedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Data:       body,
	}, nil
}
