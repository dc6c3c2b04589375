package dto

// TodoRequest is the create/replace payload for a todo. PUT performs a full
// replace, so every field is required on update as well.
type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
}
