package unit

// https://en.wikipedia.org/wiki/Kilobyte
const (
	Byte     = 1
	Kilobyte = 1000 * Byte
	Megabyte = 1000 * Kilobyte
)
