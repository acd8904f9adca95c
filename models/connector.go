package models

type Connector struct {
	Id     int    `json:"connector_id" bson:"connector_id"`
	EvseId int    `json:"evse_id" bson:"evse_id"`
	Type   string `json:"type" bson:"type"`
}

func NewConnector(id int, evseId int, connectorType string) *Connector {
	return &Connector{Id: id, EvseId: evseId, Type: connectorType}
}
