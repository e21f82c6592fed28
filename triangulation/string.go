package triangulation

import "fmt"

// String renders a short summary of the triangulation's size.
func (t *Triangulation) String() string {
	return fmt.Sprintf("Triangulation(%s, dim=%d, points=%d, faces=%d)",
		t.opts.name, t.dim, len(t.history), len(t.faces))
}
