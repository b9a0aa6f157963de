package service

const (
	// Version of the writer service.
	Version = "1.0.0"
)
