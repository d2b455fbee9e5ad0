//go:build !cgo

package compress

func cgoSchemes() map[string]schemeCase { return nil }
