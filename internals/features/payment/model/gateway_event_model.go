package model

import (
	"time"

	"gorm.io/datatypes"
)

// GatewayEvent adalah log notifikasi gateway yang sudah diterima.
// Unique (provider, transaction_id) jadi kunci idempotensi: notifikasi yang
// sama dikirim dua kali hanya diproses sekali.
type GatewayEvent struct {
	GatewayEventID            uint              `gorm:"column:gateway_event_id;primaryKey;autoIncrement" json:"gateway_event_id"`
	GatewayEventProvider      string            `gorm:"column:gateway_event_provider;size:30;not null;uniqueIndex:uq_gateway_event_tx" json:"gateway_event_provider"`
	GatewayEventTransactionID *string           `gorm:"column:gateway_event_transaction_id;size:100;uniqueIndex:uq_gateway_event_tx" json:"gateway_event_transaction_id,omitempty"`
	GatewayEventOrderRef      string            `gorm:"column:gateway_event_order_ref;size:100;not null" json:"gateway_event_order_ref"`
	GatewayEventStatus        string            `gorm:"column:gateway_event_status;size:30;not null" json:"gateway_event_status"`
	GatewayEventRawPayload    datatypes.JSONMap `gorm:"column:gateway_event_raw_payload" json:"gateway_event_raw_payload,omitempty"`

	CreatedAt time.Time `gorm:"column:gateway_event_created_at;autoCreateTime" json:"gateway_event_created_at"`
}

func (GatewayEvent) TableName() string { return "gateway_events" }
