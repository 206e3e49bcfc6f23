package service

// ActionResult is what every mutating operation answers. Failures carry the
// cause for status mapping; it is never serialized.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
	err     error
}

func (r ActionResult) Err() error { return r.err }

func succeeded(message, id string) ActionResult {
	return ActionResult{Success: true, Message: message, ID: id}
}

func failed(message string, err error) ActionResult {
	return ActionResult{Success: false, Message: message, err: err}
}
