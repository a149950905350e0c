package form

// Notice is a field-less message for the user, shown as a toast rather than
// next to an input.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (n *Notice) Error() string {
	return n.Title + ": " + n.Description
}
