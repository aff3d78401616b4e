package request

// PageRequest is a 0-based page plus sort parameters.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

const defaultPageSize = 20

// Normalize clamps the page to >= 0 and the size to [1, maxSize].
func (p *PageRequest) Normalize(maxSize int) {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if maxSize > 0 && p.Size > maxSize {
		p.Size = maxSize
	}
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}
