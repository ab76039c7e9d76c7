package sandheader

import "github.com/Gunvolt24/sand_conformance/internal/ports"

var (
	_ ports.HeaderChecker = NewBufferLevelChecker()
	_ ports.HeaderChecker = NewThroughputChecker()
	_ ports.HeaderChecker = NewLocationChecker()
	_ ports.HeaderChecker = NewMaxRTTChecker()
	_ ports.HeaderChecker = NewAbsoluteDeadlineChecker()
)

// Имена поддерживаемых заголовков.
const (
	HeaderBufferLevel      = "SAND-BufferLevel"
	HeaderThroughput       = "SAND-Throughput"
	HeaderLocation         = "SAND-Location"
	HeaderMaxRTT           = "SAND-MaxRTT"
	HeaderAbsoluteDeadline = "SAND-AbsoluteDeadline"
)

// NewBufferLevelChecker — `SAND-BufferLevel: level=<ms>[, t=<epoch ms>]`.
func NewBufferLevelChecker() ports.HeaderChecker {
	return &dictionaryChecker{
		name: HeaderBufferLevel,
		rules: []paramRule{
			{name: "level", required: true, check: nonNegativeInteger},
			{name: "t", check: nonNegativeInteger},
		},
	}
}

// NewThroughputChecker — `SAND-Throughput: bw=<bit/s>[, t=<epoch ms>]`.
func NewThroughputChecker() ports.HeaderChecker {
	return &dictionaryChecker{
		name: HeaderThroughput,
		rules: []paramRule{
			{name: "bw", required: true, check: positiveInteger},
			{name: "t", check: nonNegativeInteger},
		},
	}
}

// NewLocationChecker — `SAND-Location: lat=<deg>, lon=<deg>[, acc=<m>]`.
func NewLocationChecker() ports.HeaderChecker {
	return &dictionaryChecker{
		name: HeaderLocation,
		rules: []paramRule{
			{name: "lat", required: true, check: numberInRange(-90, 90)},
			{name: "lon", required: true, check: numberInRange(-180, 180)},
			{name: "acc", check: nonNegativeNumber},
		},
	}
}

// NewMaxRTTChecker — `SAND-MaxRTT: rtt=<ms>`.
func NewMaxRTTChecker() ports.HeaderChecker {
	return &dictionaryChecker{
		name: HeaderMaxRTT,
		rules: []paramRule{
			{name: "rtt", required: true, check: positiveInteger},
		},
	}
}

// NewAbsoluteDeadlineChecker — `SAND-AbsoluteDeadline: deadline=<epoch ms>`.
func NewAbsoluteDeadlineChecker() ports.HeaderChecker {
	return &dictionaryChecker{
		name: HeaderAbsoluteDeadline,
		rules: []paramRule{
			{name: "deadline", required: true, check: nonNegativeInteger},
		},
	}
}
