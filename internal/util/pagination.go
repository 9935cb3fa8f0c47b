package util

const (
	defaultSize = 10
	maxSize     = 100
)

func Calculate(page, size int) (from int, outSize int) {
	if size <= 0 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	if page <= 0 {
		page = 1
	}
	return (page - 1) * size, size
}
