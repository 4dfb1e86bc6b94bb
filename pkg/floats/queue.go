package floats

// Queue is a bounded FIFO of float64 values. Updating a full queue evicts the
// oldest value and hands it back to the caller, so rolling aggregates can be
// maintained without rescanning the whole window.
type Queue struct {
	Values Slice `json:"values"`
	Size   int   `json:"size"`
}

func NewQueue(size int) *Queue {
	return &Queue{
		Values: make(Slice, 0, size),
		Size:   size,
	}
}

// Update appends v. When the queue is already full the oldest value is
// evicted and returned with evicted = true.
func (q *Queue) Update(v float64) (old float64, evicted bool) {
	if len(q.Values) >= q.Size {
		old = q.Values[0]
		q.Values = append(q.Values[1:], v)
		return old, true
	}

	q.Values = append(q.Values, v)
	return 0, false
}

func (q *Queue) Last(i int) float64 {
	return q.Values.Last(i)
}

func (q *Queue) Length() int {
	return len(q.Values)
}

func (q *Queue) Full() bool {
	return len(q.Values) >= q.Size
}

func (q *Queue) Sum() float64 {
	return q.Values.Sum()
}

func (q *Queue) Mean() float64 {
	return q.Values.Mean()
}

// Reset discards the window. The backing array is reallocated rather than
// truncated: Update shifts the slice base as it evicts, and a replay after
// Reset must walk the exact same allocation steps as a fresh queue.
func (q *Queue) Reset() {
	q.Values = make(Slice, 0, q.Size)
}
