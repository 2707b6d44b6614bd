package roster

// Counter hands out sequential bib numbers.
type Counter struct {
	next int
}

// NewCounter returns a counter whose first bib is start.
func NewCounter(start int) *Counter {
	return &Counter{next: start}
}

// Next returns the current bib and advances the counter.
func (c *Counter) Next() int {
	bib := c.next
	c.next++
	return bib
}

// Peek returns the bib the next call to Next will hand out.
func (c *Counter) Peek() int { return c.next }
