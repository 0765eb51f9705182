package libdiff

// Reverse returns the changes taking the new tree back to the old one.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		c.From, c.To = c.To, c.From
		switch c.Op {
		case Insert:
			c.Op = Delete
		case Delete:
			c.Op = Insert
		}
		res[i] = c
	}
	return res
}
