package request_models

// Bridge payloads follow the wire contract of the desktop app exactly.

type BridgeRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Operation string `json:"operation" binding:"required"`
}

type BridgeDeleteRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Operation string `json:"operation" binding:"required"`
	FirstName string `json:"first_name"`
}
