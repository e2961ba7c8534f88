package models

type UploadRequest struct {
	State  WorkflowState   `json:"state"`
	Images []UploadedImage `json:"images" binding:"required,min=1,dive"`
}

type SelectionRequest struct {
	State   WorkflowState `json:"state"`
	ItemIDs []string      `json:"item_ids" binding:"required,min=1"`
}

type MoveRequest struct {
	State  WorkflowState `json:"state"`
	ItemID string        `json:"item_id" binding:"required"`
	// TargetGroup empty means "make individual".
	TargetGroup string `json:"target_group"`
}

type CategorizeRequest struct {
	State    WorkflowState `json:"state"`
	GroupID  string        `json:"group_id" binding:"required"`
	Category string        `json:"category" binding:"required"`
}

type DescribeRequest struct {
	State                WorkflowState `json:"state"`
	ItemID               string        `json:"item_id" binding:"required"`
	VoiceDescription     string        `json:"voice_description"`
	GeneratedDescription string        `json:"generated_description"`
}

type ItemRequest struct {
	State  WorkflowState `json:"state"`
	ItemID string        `json:"item_id" binding:"required"`
}

type StateRequest struct {
	State WorkflowState `json:"state"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
