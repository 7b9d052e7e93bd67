package domain

// Page is an offset pagination request. Page numbers start at 1.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"limit"`
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// Normalize clamps the page into [1, maxSize] using defaultSize when unset.
func (p Page) Normalize(defaultSize, maxSize int) Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}

// PageCount returns how many pages of size p.Size cover total rows.
func (p Page) PageCount(total int) int {
	if p.Size <= 0 || total <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}
