package toggle_time_slot

// ToggleSlotRequest HTTP request model
type ToggleSlotRequest struct {
	Active bool `json:"active"`
}
