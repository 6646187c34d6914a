package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/quadro-app/quadro/internal/domain/entity"
)

// Payload is the envelope used for --json output.
type Payload[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes a success envelope around data.
func JSON[T any](w io.Writer, data T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Payload[T]{Success: true, Data: data})
}

// JSONError writes a failure envelope.
func JSONError(w io.Writer, err error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Payload[struct{}]{Success: false, Error: err.Error()})
}

// User prints a one-line user summary.
func User(w io.Writer, u *entity.User) {
	fmt.Fprintf(w, "%s <%s> (%s) id=%s\n", u.Name, u.Email, u.Country, u.ID)
}

// Projects prints a project table.
func Projects(w io.Writer, projects []entity.Project) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tCREATED")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Description, p.CreatedAt)
	}
	_ = tw.Flush()
}

// Tasks prints a task table.
func Tasks(w io.Writer, tasks []entity.Task) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tCREATED\tCOMPLETED")
	for _, t := range tasks {
		completed := t.CompletedAt
		if completed == "" {
			completed = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Status, t.CreatedAt, completed)
	}
	_ = tw.Flush()
}
