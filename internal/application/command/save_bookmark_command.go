package command

// SaveBookmarkCommand is the body of both the create and the update routes;
// they validate against the same schema.
type SaveBookmarkCommand struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Type  string `json:"type"`
}
