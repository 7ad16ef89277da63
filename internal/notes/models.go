package notes

type ListItem struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

type Note struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	ListItems []ListItem `json:"listItems" yaml:"listItems"`
}

// NoteInput is the accepted request payload for create and update.
// Any other field, including a caller-supplied id, is ignored.
type NoteInput struct {
	Title     string     `json:"title"`
	ListItems []ListItem `json:"listItems"`
}

func (n Note) clone() Note {
	out := n
	if n.ListItems != nil {
		out.ListItems = make([]ListItem, len(n.ListItems))
		copy(out.ListItems, n.ListItems)
	}
	return out
}
