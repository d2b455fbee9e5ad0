//go:build cgo

package compress

func cgoSchemes() map[string]schemeCase {
	return map[string]schemeCase{
		"gozstd_neg5": {scheme: NewGoZstd(-5)},
		"gozstd_3":    {scheme: NewGoZstd(3)},
		"gozstd_19":   {scheme: NewGoZstd(19)},
	}
}
